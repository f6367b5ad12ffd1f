package catalog

// ESIMType classifies a product's geographic reach.
type ESIMType string

const (
	ESIMTypeLocal    ESIMType = "local"
	ESIMTypeRegional ESIMType = "regional"
	ESIMTypeGlobal   ESIMType = "global"
)

// ESIMTypeFromSource maps a raw destination type onto an ESIMType. Only
// "local" and "regional" pass through; anything else, including an empty
// value, collapses to global.
func ESIMTypeFromSource(raw string) ESIMType {
	switch raw {
	case string(ESIMTypeLocal):
		return ESIMTypeLocal
	case string(ESIMTypeRegional):
		return ESIMTypeRegional
	default:
		return ESIMTypeGlobal
	}
}

func (t ESIMType) IsValid() bool {
	switch t {
	case ESIMTypeLocal, ESIMTypeRegional, ESIMTypeGlobal:
		return true
	}
	return false
}

func (t ESIMType) String() string { return string(t) }

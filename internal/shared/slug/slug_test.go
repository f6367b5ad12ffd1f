package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple lowercase", "japan", "japan"},
		{"uppercase folded", "Japan", "japan"},
		{"spaces collapse", "United Arab Emirates", "united-arab-emirates"},
		{"punctuation runs collapse", "  a--b!!c  ", "a-b-c"},
		{"leading and trailing trimmed", "--hello world--", "hello-world"},
		{"digits preserved", "Big Apple US1", "big-apple-us1"},
		{"diacritics folded", "Curaçao", "curacao"},
		{"french accents folded", "Côte d'Ivoire", "cote-d-ivoire"},
		{"empty input", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}

func TestMake_Deterministic(t *testing.T) {
	first := Make("Big Apple-US1")
	second := Make("Big Apple-US1")
	assert.Equal(t, first, second)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "japan-jp", Join("Japan", "JP"))
	assert.Equal(t, "united-states-us2", Join("United States", "US2"))
}

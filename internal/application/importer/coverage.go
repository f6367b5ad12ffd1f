package importer

import (
	"fmt"
	"strings"

	"simvia/internal/infrastructure/destinations"
)

// coverageText renders the coverage list to one line per covered country,
// in the form "Country: Network A (3G, LTE), Network B (5G)".
func coverageText(coverages []destinations.Coverage) string {
	if len(coverages) == 0 {
		return ""
	}

	lines := make([]string, 0, len(coverages))
	for _, cov := range coverages {
		networks := make([]string, 0, len(cov.Networks))
		for _, n := range cov.Networks {
			networks = append(networks, fmt.Sprintf("%s (%s)", n.Name, strings.Join(n.Types, ", ")))
		}
		lines = append(lines, fmt.Sprintf("%s: %s", cov.CountryName, strings.Join(networks, ", ")))
	}
	return strings.Join(lines, "\n")
}

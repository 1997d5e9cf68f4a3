package interpreter

import (
	"strconv"

	"github.com/aledsdavies/glox/pkgs/loxerr"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// withSuggestion enriches an undefined-variable/undefined-property
// diagnostic with an advisory "did you mean '<name>'?" hint computed
// against the names visible at the point of failure. It never changes
// whether the program errors, only the text of the diagnostic (SPEC_FULL.md
// §6.3).
func withSuggestion(err error, candidates []string, missing string) error {
	le, ok := err.(*loxerr.Error)
	if !ok || len(candidates) == 0 {
		return err
	}
	closest, bestDistance := "", -1
	for _, c := range candidates {
		d := fuzzy.LevenshteinDistance(missing, c)
		if bestDistance < 0 || d < bestDistance {
			closest, bestDistance = c, d
		}
	}
	if bestDistance > len(missing) {
		// Too dissimilar to be a useful suggestion.
		return err
	}
	return le.WithHint("Did you mean '" + closest + "'?")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

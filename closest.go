package clargs

import (
	"strings"

	"github.com/agext/levenshtein"
)

// maxSuggestDistance is the largest edit distance at which
// an unknown option is considered a typo of a known one.
const maxSuggestDistance = 2

// closestLong returns the long form closest to an unknown --option token,
// or an empty string if none is close enough.
func closestLong(token string, args []*Arg) string {
	name, _, _ := strings.Cut(token, "=")
	if !strings.HasPrefix(name, "--") || len(name) < 4 {
		return ""
	}

	var choices []string

	for _, a := range args {
		for _, form := range argForms(a) {
			if strings.HasPrefix(form, "--") {
				choices = append(choices, form)
			}
		}
	}

	closest, dist := closestChoice(name, choices)
	if closest == "" || dist > maxSuggestDistance {
		return ""
	}

	return closest
}

func closestChoice(cmd string, choices []string) (string, int) {
	if len(choices) == 0 {
		return "", 0
	}

	mincmd := -1
	mindist := -1

	for i, c := range choices {
		l := levenshtein.Distance(cmd, c, nil)

		if mincmd < 0 || l < mindist {
			mindist = l
			mincmd = i
		}
	}

	return choices[mincmd], mindist
}

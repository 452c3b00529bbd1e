package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CamelToFlag transforms s from CamelCase to lower case words
// joined by the divider: ("MyFile", "-") gives "my-file".
func CamelToFlag(s, divider string) string {
	return strings.ToLower(strings.Join(splitCamel(s), divider))
}

type runeClass int

const (
	classLower runeClass = iota + 1
	classUpper
	classDigit
	classOther
)

func classOf(r rune) runeClass {
	switch {
	case unicode.IsLower(r):
		return classLower
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsDigit(r):
		return classDigit
	default:
		return classOther
	}
}

// splitCamel splits a CamelCase identifier into words, keeping
// acronyms together ("HTTPServer" gives "HTTP", "Server").
func splitCamel(src string) []string {
	if !utf8.ValidString(src) {
		return []string{src}
	}

	var groups [][]rune

	last := runeClass(0)

	for _, r := range src {
		class := classOf(r)
		if last != 0 && (class == last || class == classDigit) {
			groups[len(groups)-1] = append(groups[len(groups)-1], r)
		} else {
			groups = append(groups, []rune{r})
		}

		last = class
	}

	// Move the last upper rune of a group to the next lower group.
	for i := 0; i < len(groups)-1; i++ {
		if unicode.IsUpper(groups[i][0]) && unicode.IsLower(groups[i+1][0]) {
			upper := groups[i][len(groups[i])-1]
			groups[i+1] = append([]rune{upper}, groups[i+1]...)
			groups[i] = groups[i][:len(groups[i])-1]
		}
	}

	words := make([]string, 0, len(groups))

	for _, group := range groups {
		if len(group) > 0 && !(len(group) == 1 && group[0] == '_') {
			words = append(words, string(group))
		}
	}

	return words
}

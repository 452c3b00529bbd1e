package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var validatorTag = regexp.MustCompile(`the '.*' tag`)

// invalidVarError wraps an error raised by validator on an argument value,
// and rewrites the most common validator messages into shorter ones.
type invalidVarError struct {
	argName      string
	argValue     string
	validatorErr error
}

// Error implements the error interface.
func (err *invalidVarError) Error() string {
	matched := validatorTag.FindString(err.validatorErr.Error())
	if matched != "" {
		var tagname string

		parts := strings.Split(matched, " ")
		if len(parts) > 1 {
			tagname = strings.Trim(parts[1], "'")
		}

		return fmt.Sprintf("`%s` is not a valid %s", err.argValue, tagname)
	}

	// Or simply replace the empty key with the argument name.
	return strings.ReplaceAll(err.validatorErr.Error(), "''", fmt.Sprintf("'%s'", err.argName))
}

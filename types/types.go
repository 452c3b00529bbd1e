// Package types provides argument value types with special binding rules.
package types

import (
	"fmt"
	"strconv"
)

// Counter counts the occurrences of a short flag (`-vvv` gives 3).
// Struct fields of this type are scanned as short-only counting flags.
type Counter int

// Set implements the pflag.Value interface. The bound value of a counting
// flag is its number of occurrences; an empty value or "true" adds one.
func (c *Counter) Set(val string) error {
	if val == "" || val == "true" {
		*c++

		return nil
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("invalid value for counter: %w", err)
	}

	*c = Counter(parsed)

	return nil
}

// Get returns inner value for Counter.
func (c *Counter) Get() any { return int(*c) }

// String implements the pflag.Value interface.
func (c *Counter) String() string { return strconv.Itoa(int(*c)) }

// Type implements the pflag.Value interface.
func (c *Counter) Type() string { return "count" }

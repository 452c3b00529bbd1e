// Package env gives read-only access to environment variables, as the only
// source of values besides the command line and argument defaults.
package env

import (
	"os"
	"strings"

	"github.com/reeflective/clargs/internal/arg"
)

// Lookuper finds the value of an environment variable.
// Names are compared case-insensitively.
type Lookuper interface {
	Lookup(name string) (string, bool)
}

// Environ is a Lookuper over a list of KEY=value entries, as returned
// by os.Environ. When several keys only differ in case, the first one wins.
type Environ func() []string

// OS looks variables up in the process environment.
var OS Lookuper = Environ(os.Environ)

// Lookup implements Lookuper.
func (e Environ) Lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	for _, entry := range e() {
		key, value, found := strings.Cut(entry, "=")
		if found && strings.EqualFold(key, name) {
			return value, true
		}
	}

	return "", false
}

// Map is a Lookuper over a fixed set of variables, mostly useful in tests.
// Collisions between keys differing only in case are resolved arbitrarily.
type Map map[string]string

// Lookup implements Lookuper.
func (m Map) Lookup(name string) (string, bool) {
	if value, found := m[name]; found {
		return value, true
	}

	for key, value := range m {
		if strings.EqualFold(key, name) {
			return value, true
		}
	}

	return "", false
}

// VarName returns the environment variable bound to the argument: its
// explicit variable if any, or its name prefixed with its env prefix,
// or its name in upper case.
func VarName(a *arg.Arg) string {
	switch {
	case a.Env != "":
		return a.Env
	case a.EnvPrefix != "":
		return a.EnvPrefix + a.Name
	default:
		return strings.ToUpper(a.Name)
	}
}

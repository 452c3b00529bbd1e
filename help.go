package clargs

/*
   Reflags - Unified CLI toolset library
   Copyright (C) 2021 Maxime Landon

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/reeflective/clargs/internal/errors"
)

const (
	termWidth = 70
	argIndent = "    "
	descWidth = 40
)

var (
	headingColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// --------------------------------------------------------------------------------------------------- //
//                                             Public                                                  //
// --------------------------------------------------------------------------------------------------- //

// PrintHelp writes the help message of the command to w: its name, version
// and documentation, followed by its flags, options and positional arguments.
func PrintHelp(w io.Writer, reg *Registry) ExitCode {
	name := orDefault(reg.Name, "unknown")

	fmt.Fprintf(w, "%s %s\n", name, orDefault(reg.Version, "0"))

	if doc := orDefault(reg.Doc, reg.Description); doc != "" {
		fmt.Fprintln(w, wordwrap.WrapString(doc, termWidth))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headingColor.Sprint("USAGE:"))
	fmt.Fprintf(w, "%s%s [OPTIONS] [ARGS]\n", argIndent, name)

	writeSection(w, "FLAGS:", reg.Flags())
	writeSection(w, "OPTIONS:", reg.Options())
	writeSection(w, "ARGS:", reg.Positionals())

	return ExitOK
}

// PrintVersion writes the name and version of the command to w.
func PrintVersion(w io.Writer, reg *Registry) ExitCode {
	fmt.Fprintf(w, "%s %s\n", orDefault(reg.Name, "Unknown"), orDefault(reg.Version, "0"))

	return ExitOK
}

// PrintUsageError writes a short message describing the error to w, and
// returns the code the process should exit with. Nothing is written for a
// nil error. When the command line is empty, the help message is written.
func PrintUsageError(w io.Writer, reg *Registry, err error) ExitCode {
	if err == nil {
		return ExitOK
	}

	var usage *UsageError
	if !stderrors.As(err, &usage) {
		fmt.Fprintf(w, "%s %v\n", errorColor.Sprint("Error:"), err)

		return ExitCodeOf(err)
	}

	switch usage.Kind {
	case errors.NoArgs:
		PrintHelp(w, reg)
	case errors.Invalid:
		fmt.Fprintf(w, "Invalid argument %s", errorColor.Sprint(usage.Token))

		if closest := closestLong(usage.Token, reg.Args); closest != "" {
			fmt.Fprintf(w, ", did you mean %s?", closest)
		}

		fmt.Fprintln(w)
	case errors.RequiresPositional:
		fmt.Fprintf(w, "Missing positional argument %s\n", errorColor.Sprint(usage.Arg.String()))
	case errors.RequiresValue:
		fmt.Fprintf(w, "Missing value for %s\n", errorColor.Sprint(displayName(usage.Arg)))
	case errors.RequiresValueIf:
		fmt.Fprintf(w, "Missing value for %s, required by %s\n",
			errorColor.Sprint(displayName(usage.Arg)), displayName(usage.Trigger))
	case errors.CustomArg:
		fmt.Fprintf(w, "Error %s: %s\n", errorColor.Sprint(displayName(usage.Arg)), usage.Text)
	default:
		fmt.Fprintln(w, usage.Text)
	}

	return ExitUsage
}

// --------------------------------------------------------------------------------------------------- //
//                                             Internal                                                //
// --------------------------------------------------------------------------------------------------- //

// writeSection writes a heading and one aligned line per argument,
// wrapping descriptions over several lines when needed.
func writeSection(w io.Writer, heading string, args []*Arg) {
	if len(args) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headingColor.Sprint(heading))

	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, a := range args {
		desc := a.Doc
		if a.Default != "" && a.TakesValue() {
			desc = strings.TrimSpace(desc + " [default: " + a.Default + "]")
		}

		lines := strings.Split(wordwrap.WrapString(desc, descWidth), "\n")

		fmt.Fprintf(table, "%s%s\t%s\n", argIndent, a, lines[0])

		for _, line := range lines[1:] {
			fmt.Fprintf(table, "\t %s\n", line)
		}
	}

	table.Flush()
}

// displayName returns the form used to refer to an argument in messages.
func displayName(a *Arg) string {
	switch {
	case a == nil:
		return ""
	case a.Long != "":
		return "--" + a.Long
	case a.Short != "":
		return "-" + a.Short
	default:
		return a.Name
	}
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}

	return value
}

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// normalizeArgs marks a negative token as positional by inserting "--"
// before it, so `jcrack -4971030886054769832` is not parsed as shorthand
// flags. Subcommand invocations are left alone.
func normalizeArgs(root *cobra.Command, args []string) []string {
	for _, arg := range args {
		if arg == "--" || arg == "help" {
			return args
		}
		for _, c := range root.Commands() {
			if c.Name() == arg || c.HasAlias(arg) {
				return args
			}
		}
	}

	for i, arg := range args {
		if !isNegativeInteger(arg) {
			continue
		}
		if i > 0 && takesValue(root, args[i-1]) {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}

func isNegativeInteger(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// takesValue reports whether arg is a flag that consumes the next argument.
func takesValue(root *cobra.Command, arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	if name := strings.TrimPrefix(arg, "--"); name != arg {
		f = lookup(root, name)
	} else if name := arg[1:]; len(name) == 1 {
		f = shorthandLookup(root, name)
	}
	return f != nil && f.NoOptDefVal == ""
}

func lookup(root *cobra.Command, name string) *pflag.Flag {
	if f := root.Flags().Lookup(name); f != nil {
		return f
	}
	return root.PersistentFlags().Lookup(name)
}

func shorthandLookup(root *cobra.Command, name string) *pflag.Flag {
	if f := root.Flags().ShorthandLookup(name); f != nil {
		return f
	}
	return root.PersistentFlags().ShorthandLookup(name)
}

package main

import (
	"github.com/spf13/cobra"
)

var scopeCmd = &cobra.Command{
	Use:   "scope",
	Short: "Print the bracket or string scope enclosing the cursor",
	Long: `Print the interior of the innermost (), [] or {} pair enclosing the
cursor. When the cursor is inside a "", '' or ` + "``" + ` string, the string's
interior is printed instead. Delimiters are excluded from the range.`,
	Args: cobra.NoArgs,
	RunE: runScope,
}

func runScope(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	return s.report(s.nav.Scope(s.doc, s.cursor))
}

package main

import (
	"github.com/spf13/cobra"
)

var (
	enclosedFirst    string
	enclosedLast     string
	enclosedBackward bool
	enclosedMulti    bool
)

var enclosedCmd = &cobra.Command{
	Use:   "enclosed",
	Short: "Print the nearest word wrapped in a pair of markers",
	Long: `Print the nearest word written as FIRST word LAST, such as <name> for
--first '<' --last '>'. The search runs from the cursor to the end of the
file, or to its start with --backward. The markers are not part of the
printed range.`,
	Example: `  textnav enclosed -f page.html --at 3:1 --first '<' --last '>'
  textnav enclosed -f notes.md --at 10:4 --first '[' --last ']' --backward`,
	Args: cobra.NoArgs,
	RunE: runEnclosed,
}

func init() {
	enclosedCmd.Flags().StringVar(&enclosedFirst, "first", "", "Opening marker")
	enclosedCmd.Flags().StringVar(&enclosedLast, "last", "", "Closing marker")
	enclosedCmd.Flags().BoolVarP(&enclosedBackward, "backward", "b", false, "Search toward the start of the file")
	enclosedCmd.Flags().BoolVar(&enclosedMulti, "multi-char", false, "Allow markers longer than one character")
	_ = enclosedCmd.MarkFlagRequired("first")
	_ = enclosedCmd.MarkFlagRequired("last")
}

func runEnclosed(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	return s.report(s.nav.EnclosedWord(s.doc, s.cursor, enclosedFirst, enclosedLast, !enclosedBackward))
}

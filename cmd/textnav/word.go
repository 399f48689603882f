package main

import (
	"github.com/spf13/cobra"
)

var wordBackward bool

var wordCmd = &cobra.Command{
	Use:   "word",
	Short: "Print the next word after (or before) the cursor",
	Long: `Print the range of the next word after the cursor, crossing lines as
needed. The word the cursor is in is skipped. Use --backward to search
toward the start of the file.`,
	Args: cobra.NoArgs,
	RunE: runWord,
}

func init() {
	wordCmd.Flags().BoolVarP(&wordBackward, "backward", "b", false, "Search toward the start of the file")
}

func runWord(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	return s.report(s.nav.NextWord(s.doc, s.cursor, wordBackward))
}

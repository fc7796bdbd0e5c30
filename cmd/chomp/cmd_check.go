package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func newCheckCmd() *cobra.Command {
	var grammar string

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse files and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, filename := range args {
				_, _, err := parseFile(filename, grammarFor(filename, grammar))
				if err != nil {
					failed++
					fmt.Printf("%s: %s\n", filename, failStyle.Render(err.Error()))
					continue
				}
				fmt.Printf("%s: %s\n", filename, okStyle.Render("ok"))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammar, "grammar", "g", "", "grammar to use (json, csv, expr); default is the file extension")

	return cmd
}

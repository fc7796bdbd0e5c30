package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/chomp/parse/gen"
	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "gen <schema.yaml>",
		Short: "Generate parser code from a schema description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := gen.Load(args[0])
			if err != nil {
				return err
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			return gen.Generate(out, schema)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

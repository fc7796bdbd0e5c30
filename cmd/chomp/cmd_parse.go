package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/chomp/data"
	"github.com/dhamidi/chomp/parse"
	"github.com/spf13/cobra"
)

func grammarFor(filename, override string) string {
	if override != "" {
		return override
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

func parseFile(filename, grammar string) (parse.Node, any, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	text := string(content)

	switch grammar {
	case "json":
		node, err := data.ParseJSON(text)
		if err != nil {
			return nil, nil, err
		}
		return node, node.Value(), nil
	case "csv":
		doc, err := data.ParseCSV(text)
		if err != nil {
			return nil, nil, err
		}
		return doc, doc.Records(), nil
	case "expr":
		script, err := data.ParseScript(text)
		if err != nil {
			return nil, nil, err
		}
		return script, map[string]any{"statements": script.Statements.Len()}, nil
	default:
		return nil, nil, fmt.Errorf("unknown grammar: %s (expected json, csv, or expr)", grammar)
	}
}

func newParseCmd() *cobra.Command {
	var grammar string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and dump the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			node, value, err := parseFile(filename, grammarFor(filename, grammar))
			if err != nil {
				return err
			}

			out := map[string]any{
				"span":  node.Span().String(),
				"value": value,
			}
			text, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println(string(text))
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammar, "grammar", "g", "", "grammar to use (json, csv, expr); default is the file extension")

	return cmd
}

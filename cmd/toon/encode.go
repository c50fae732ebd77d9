package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toonfmt/toon"
	jsonadapter "github.com/toonfmt/toon/adapter/json"
	yamladapter "github.com/toonfmt/toon/adapter/yaml"
	"github.com/toonfmt/toon/input"
)

func newEncodeCmd() *cobra.Command {
	var from string
	var indent int
	var delimiter string
	var keyFolding int

	cmd := &cobra.Command{
		Use:     "encode [file|url|-]",
		Aliases: []string{"e"},
		Short:   "Encode JSON or YAML input into TOON",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			src, err := input.Resolve(context.Background(), arg)
			if err != nil {
				return err
			}
			delim, err := parseDelimiterFlag(delimiter)
			if err != nil {
				return err
			}
			opts := []toon.EncodeOption{
				toon.WithEncodeIndent(indent),
				toon.WithEncodeDelimiter(delim),
				toon.WithKeyFolding(keyFolding),
			}

			format := from
			if format == "" {
				format = "json"
				if !src.LooksTOON() {
					format = "json"
				}
			}

			var out []byte
			switch format {
			case "json":
				out, err = jsonadapter.FromJSON(src.Data, opts...)
			case "yaml", "yml":
				out, err = yamladapter.FromYAML(src.Data, opts...)
			default:
				return fmt.Errorf("toon: unknown --from format %q", format)
			}
			if err != nil {
				return renderError(src, err)
			}
			cmd.OutOrStdout().Write(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source format: json or yaml (default json)")
	cmd.Flags().IntVar(&indent, "indent", 2, "spaces per nesting level")
	cmd.Flags().StringVar(&delimiter, "delimiter", "comma", "array delimiter: comma, tab, or pipe")
	cmd.Flags().IntVar(&keyFolding, "key-folding", 0, "max depth of dotted-key folding, 0 disables it")
	return cmd
}

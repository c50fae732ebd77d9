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

func newDecodeCmd() *cobra.Command {
	var to string
	var strict bool
	var expandPaths bool
	var indentUnit int

	cmd := &cobra.Command{
		Use:     "decode [file|url|-]",
		Aliases: []string{"d"},
		Short:   "Decode a TOON document into JSON or YAML",
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
			opts := []toon.DecodeOption{
				toon.WithDecodeIndent(indentUnit),
				toon.WithStrict(strict),
				toon.WithExpandPaths(expandPaths),
			}

			var out []byte
			switch to {
			case "", "json":
				out, err = jsonadapter.ToJSON(string(src.Data), opts...)
			case "yaml", "yml":
				out, err = yamladapter.ToYAML(string(src.Data), opts...)
			default:
				return fmt.Errorf("toon: unknown --to format %q", to)
			}
			if err != nil {
				return renderError(src, err)
			}
			cmd.OutOrStdout().Write(out)
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVarP(&to, "to", "o", "json", "target format: json or yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject non-canonical input")
	cmd.Flags().BoolVar(&expandPaths, "expand-paths", false, "fold dotted keys into nested objects")
	cmd.Flags().IntVar(&indentUnit, "indent", 2, "expected spaces per nesting level")
	return cmd
}

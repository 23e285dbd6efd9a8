package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thisorthat/internal/dataset"
	"thisorthat/internal/preference"
)

func newNormalizeCommand() *cobra.Command {
	var (
		in, out, rulesPath string
	)
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Clean and categorize the tags of a raw design dataset",
		Long: `Normalize a raw dataset document.

Tags are trimmed, validated, de-duplicated and assigned to a category, colors
are canonicalized and malformed records are dropped. The normalized document
is written to --out (stdout by default) and a JSON report goes to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := preference.LoadRuleSet(rulesPath)
			if err != nil {
				return err
			}
			loader := dataset.NewLoader(preference.NewNormalizer(rules), zap.NewNop())

			res, err := loader.LoadFile(in)
			if err != nil {
				return fmt.Errorf("normalizing %s: %w", in, err)
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := dataset.Encode(w, res.Designs, res.Metadata, res.Report); err != nil {
				return fmt.Errorf("writing dataset: %w", err)
			}

			enc := json.NewEncoder(cmd.ErrOrStderr())
			enc.SetIndent("", "  ")
			return enc.Encode(res.Report)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Raw dataset JSON file")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "Tag rule YAML file (default embedded rules)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thisorthat/internal/dataset"
	"thisorthat/internal/preference"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		designsPath, selectionsPath string
		strong, moderate            float64
		maxRecs                     int
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Build a preference profile from a selection history",
		Long: `Analyze a selection history against a dataset and print the resulting
ResultsProfile as JSON.

The selections file holds either a JSON array of selections or an object with
a "selections" array.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := dataset.NewLoader(nil, zap.NewNop()).LoadFile(designsPath)
			if err != nil {
				return fmt.Errorf("loading designs: %w", err)
			}
			selections, err := readSelections(selectionsPath)
			if err != nil {
				return err
			}

			policy := preference.Policy{
				StrongThreshold:    strong,
				ModerateThreshold:  moderate,
				MaxRecommendations: maxRecs,
			}
			if err := policy.Validate(); err != nil {
				return err
			}

			analyzer := preference.NewAnalyzer(preference.WithPolicy(policy))
			profile, err := analyzer.Analyze(selections, preference.NewDesignIndex(loaded.Designs), time.Now().UTC())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(profile)
		},
	}

	cmd.Flags().StringVar(&designsPath, "designs", "", "Dataset JSON file")
	cmd.Flags().StringVar(&selectionsPath, "selections", "", "Selections JSON file")
	cmd.Flags().Float64Var(&strong, "strong", preference.DefaultStrongThreshold, "Strong preference threshold (percent)")
	cmd.Flags().Float64Var(&moderate, "moderate", preference.DefaultModerateThreshold, "Moderate preference threshold (percent)")
	cmd.Flags().IntVar(&maxRecs, "max-recommendations", preference.DefaultMaxRecommendations, "Maximum recommendations")
	_ = cmd.MarkFlagRequired("designs")
	_ = cmd.MarkFlagRequired("selections")

	return cmd
}

func readSelections(path string) ([]preference.Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading selections: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		selections := []preference.Selection{}
		if err := json.Unmarshal(data, &selections); err != nil {
			return nil, fmt.Errorf("decoding selections: %w", err)
		}
		return selections, nil
	}

	wrapped := struct {
		Selections []preference.Selection `json:"selections"`
	}{Selections: []preference.Selection{}}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decoding selections: %w", err)
	}
	return wrapped.Selections, nil
}

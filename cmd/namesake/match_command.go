package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"namesake/internal/name"
)

type matchReport struct {
	Query     *name.Name `json:"query"`
	Candidate *name.Name `json:"candidate"`
	Scores    []int      `json:"scores"`
	Score     int        `json:"score"`
	Threshold int        `json:"threshold"`
	Matched   bool       `json:"matched"`
}

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var (
		threshold         int
		romanizationScore int
		aggregate         string
		jsonOutput        bool
	)

	cmd := &cobra.Command{
		Use:   "match <name> <name>",
		Short: "Score two names against each other",
		Long: `Score two names against each other.

Each argument may carry an enclosed alternate form, for example
"소녀시대 (Girls' Generation)", which is split into its native and Latin parts.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts := cfg.MatchOptions()
			effectiveThreshold := cfg.Matching.Threshold

			flags := cmd.Flags()
			if flags.Changed("threshold") {
				if threshold < 0 || threshold > 100 {
					return fmt.Errorf("--threshold must be between 0 and 100")
				}
				opts = append(opts, name.WithThreshold(threshold))
				effectiveThreshold = threshold
			}
			if flags.Changed("romanization-score") {
				if romanizationScore < 0 || romanizationScore > 100 {
					return fmt.Errorf("--romanization-score must be between 0 and 100")
				}
				opts = append(opts, name.WithRomanizationScore(romanizationScore))
			}
			if flags.Changed("aggregate") {
				agg, ok := name.AggregateByName(aggregate)
				if !ok {
					return fmt.Errorf("--aggregate must be one of %s", strings.Join(name.AggregateNames(), ", "))
				}
				opts = append(opts, name.WithAggregate(agg))
			}

			query := name.Parse(args[0])
			candidate := name.Parse(args[1])
			eval := query.Evaluate(candidate, opts...)

			report := matchReport{
				Query:     query,
				Candidate: candidate,
				Scores:    eval.Scores,
				Score:     eval.Score,
				Threshold: effectiveThreshold,
				Matched:   eval.Matched,
			}
			if jsonOutput {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "Query:     %s\n", describeName(query))
			fmt.Fprintf(out, "Candidate: %s\n", describeName(candidate))
			fmt.Fprintf(out, "Scores:    %s\n", joinInts(eval.Scores))
			fmt.Fprintf(out, "Score:     %d (threshold %d)\n", eval.Score, effectiveThreshold)
			fmt.Fprintf(out, "Match:     %s\n", decisionLabel(eval.Matched, colorize))
			return nil
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", name.DefaultThreshold, "Minimum score to accept a match")
	cmd.Flags().IntVar(&romanizationScore, "romanization-score", name.DefaultRomanizationScore, "Score awarded for an accepted romanization")
	cmd.Flags().StringVar(&aggregate, "aggregate", "max", "Score pool reduction (max, mean, min)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func describeName(n *name.Name) string {
	if n.IsZero() {
		return "(empty)"
	}
	parts := []string{n.String()}
	if n.Romanized != "" {
		parts = append(parts, "romanized="+n.Romanized)
	}
	if n.LitTranslation != "" && n.English != "" {
		parts = append(parts, "translation="+n.LitTranslation)
	}
	if len(n.Versions) > 0 {
		versions := make([]string, 0, len(n.Versions))
		for _, v := range n.Versions {
			versions = append(versions, v.String())
		}
		parts = append(parts, "versions="+strings.Join(versions, " | "))
	}
	return strings.Join(parts, "  ")
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "-"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"namesake/internal/romanize"
	"namesake/internal/script"
	"namesake/internal/textnorm"
)

type romanizeReport struct {
	Text       string   `json:"text"`
	Scripts    string   `json:"scripts"`
	Pattern    string   `json:"hangul_pattern,omitempty"`
	Candidates []string `json:"candidates"`
}

func newRomanizeCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "romanize <text>",
		Short:       "Show the scripts and accepted romanizations of text",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			cats := script.Set(text)

			report := romanizeReport{
				Text:       text,
				Scripts:    cats.String(),
				Candidates: romanize.Default().Candidates(cats, text),
			}
			if re := romanize.HangulPattern(text); re != nil {
				report.Pattern = re.String()
			}
			if jsonOutput {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Text:       %s\n", report.Text)
			fmt.Fprintf(out, "Scripts:    %s\n", report.Scripts)
			if report.Pattern != "" {
				fmt.Fprintf(out, "Pattern:    %s\n", report.Pattern)
			}
			candidates := "-"
			if len(report.Candidates) > 0 {
				candidates = strings.Join(report.Candidates, ", ")
			}
			fmt.Fprintf(out, "Candidates: %s\n", candidates)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func newNormalizeCommand() *cobra.Command {
	var keepSpecial, noSpace bool

	cmd := &cobra.Command{
		Use:         "normalize <text>",
		Short:       "Print the comparison form of text",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []textnorm.Option
			if keepSpecial {
				opts = append(opts, textnorm.WithKeepSpecial())
			}
			if noSpace {
				opts = append(opts, textnorm.WithoutSpaces())
			}
			fmt.Fprintln(cmd.OutOrStdout(), textnorm.Normalize(strings.Join(args, " "), opts...))
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepSpecial, "keep-special", false, "Keep punctuation and symbols")
	cmd.Flags().BoolVar(&noSpace, "no-space", false, "Remove whitespace entirely")
	return cmd
}

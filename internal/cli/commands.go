package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"invrep/internal/appcore"
	"invrep/internal/cliutil"
)

func (s *state) predictCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "predict [flags] FASTA...",
		Short: "Report every candidate inverted repeat with its score",
		Example: `  invrep predict genome.fa
  invrep predict --min-score 20 -o jsonl reads.fa.gz > candidates.jsonl
  cat genome.fa | invrep predict -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := cliutil.ExpandPositionals(args)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrUsage, err)
			}
			return s.run(cmd, appcore.Options{SeqFiles: files})
		},
	}
}

func (s *state) optimizeCommand() *cobra.Command {
	var candidates string
	cmd := &cobra.Command{
		Use:   "optimize [flags] FASTA...",
		Short: "Select the best-scoring compatible set of inverted repeats per record",
		Example: `  invrep optimize genome.fa
  invrep optimize --all -o json genome.fa
  invrep optimize --candidates candidates.jsonl`,
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case candidates != "" && len(args) > 0:
				return fmt.Errorf("%w: --candidates conflicts with FASTA arguments", ErrUsage)
			case candidates == "" && len(args) == 0:
				return fmt.Errorf("%w: provide FASTA files or --candidates", ErrUsage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			o := appcore.Options{Optimize: true, Candidates: candidates}
			if candidates == "" {
				files, err := cliutil.ExpandPositionals(args)
				if err != nil {
					return fmt.Errorf("%w: %v", ErrUsage, err)
				}
				o.SeqFiles = files
			}
			return s.run(cmd, o)
		},
	}
	cmd.Flags().StringVar(&candidates, "candidates", "", "jsonl file of precomputed repeats (from predict -o jsonl)")
	cmd.Flags().Bool("all", false, "also print candidates that selection dropped")
	if err := cliutil.BindFlags(s.v, cmd.Flags(), map[string]string{"all": "output.all"}); err != nil {
		panic(err)
	}
	return cmd
}

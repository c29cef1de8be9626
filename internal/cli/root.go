// Package cli builds the invrep command tree. Settings come from flags,
// INVREP_* variables, and an optional YAML file, layered by viper.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"invrep/internal/appcore"
	"invrep/internal/cliutil"
	"invrep/internal/config"
	"invrep/internal/logging"
	"invrep/internal/version"
)

// Command names.
const (
	CmdPredict  = "predict"
	CmdOptimize = "optimize"
)

// ExitError carries a non-zero exit code out of a command.
type ExitError struct{ Code int }

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// ErrUsage marks bad arguments.
var ErrUsage = errors.New("usage")

type state struct {
	stdout, stderr io.Writer

	v          *viper.Viper
	configFile string

	cfg   config.Config
	log   *slog.Logger
	runID string
}

var rootKeys = map[string]string{
	"log-level":    "log.level",
	"log-format":   "log.format",
	"quiet":        "log.quiet",
	"metrics-file": "metrics.file",

	"min-score":       "scan.min-score",
	"min-matches-run": "scan.min-matches-run",
	"offset":          "scan.offset",
	"match":           "scan.match",
	"mismatch":        "scan.mismatch",
	"gap-open":        "scan.gap-open",
	"gap-extend":      "scan.gap-extend",

	"threads":            "run.threads",
	"chunk-size":         "run.chunk-size",
	"overlap":            "run.overlap",
	"dedupe-cap":         "run.dedupe-cap",
	"no-match-exit-code": "run.no-match-exit-code",

	"output": "output.format",
	"sort":   "output.sort",
	"header": "output.header",
	"pretty": "output.pretty",
}

// NewRootCommand returns the invrep command tree writing to stdout and
// logging to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	s := &state{stdout: stdout, stderr: stderr, v: config.NewViper()}

	root := &cobra.Command{
		Use:   "invrep",
		Short: "Find inverted repeats in nucleotide sequences and select a non-overlapping set",
		Long: `invrep scans FASTA records for inverted repeats (hairpin-forming
complementary arms, optionally with mismatches and gaps) and, for the
optimize command, selects the highest-scoring compatible subset.`,
		Version:           version.Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: s.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&s.configFile, "config", "", "YAML settings file")
	pf.String("log-level", "info", "log level: debug | info | warn | error")
	pf.String("log-format", "text", "log format: text | json")
	pf.BoolP("quiet", "q", false, "suppress warnings and info logs")
	pf.String("metrics-file", "", "write prometheus metrics to this textfile")

	pf.Int("min-score", 10, "minimum alignment score of a candidate")
	pf.Int("min-matches-run", 4, "minimum run of consecutive paired bases")
	pf.Int("offset", 1, "minimum distance between paired positions")
	pf.Int("match", 1, "score of a complementary pair")
	pf.Int("mismatch", -2, "score of a non-complementary pair")
	pf.Int("gap-open", -5, "gap open penalty")
	pf.Int("gap-extend", -2, "gap extension penalty")

	pf.IntP("threads", "t", 0, "worker goroutines (0 = all CPUs)")
	pf.Int("chunk-size", 0, "split records into N-bp windows (0 = no chunking)")
	pf.Int("overlap", 0, "overlap between consecutive windows")
	pf.Int("dedupe-cap", 0, "per-record duplicate filter size (0 = default)")
	pf.Int("no-match-exit-code", 0, "exit status when nothing is reported")

	pf.StringP("output", "o", "text", "output format: text | tsv | json | jsonl | yaml")
	pf.Bool("sort", false, "sort records and repeats for determinism")
	pf.Bool("header", true, "print the header line in text/tsv")
	pf.Bool("no-header", false, "suppress the header line in text/tsv")
	pf.Bool("pretty", false, "draw an ASCII hairpin under each text line (default on for terminals)")

	if err := cliutil.BindFlags(s.v, pf, rootKeys); err != nil {
		panic(err)
	}

	root.AddCommand(s.predictCommand(), s.optimizeCommand(), versionCommand())
	return root
}

func (s *state) setup(cmd *cobra.Command, _ []string) error {
	if err := config.ReadFile(s.v, s.configFile); err != nil {
		return err
	}
	if noHeader, _ := cmd.Flags().GetBool("no-header"); noHeader {
		s.v.Set("output.header", false)
	}
	cfg, err := config.Load(s.v)
	if err != nil {
		return err
	}
	log, err := logging.New(s.stderr, cfg.Log.Level, cfg.Log.Format, cfg.Log.Quiet)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrConfiguration, err)
	}
	s.cfg = cfg
	s.runID = uuid.NewString()
	s.log = log.With("run_id", s.runID, "command", cmd.Name())
	return nil
}

// prettyExplicit reports whether pretty was set anywhere but the defaults.
func (s *state) prettyExplicit(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("pretty") || s.v.InConfig("output.pretty") {
		return true
	}
	_, ok := os.LookupEnv("INVREP_OUTPUT_PRETTY")
	return ok
}

func (s *state) run(cmd *cobra.Command, o appcore.Options) error {
	o.Config = s.cfg
	o.RunID = s.runID
	o.Command = cmd.Name()
	o.Pretty = s.cfg.Output.Pretty
	if !s.prettyExplicit(cmd) && cliutil.IsTerminal(s.stdout) {
		o.Pretty = true
	}
	s.log.Debug("starting",
		"inputs", len(o.SeqFiles),
		"candidates", o.Candidates,
		"format", s.cfg.Output.Format,
		"pretty", o.Pretty,
	)
	if code := appcore.Run(cmd.Context(), s.stdout, o, s.log); code != appcore.ExitOK {
		return &ExitError{Code: code}
	}
	return nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print the version",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "invrep version %s\n", version.Version)
			return err
		},
	}
}

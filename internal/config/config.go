// Package config holds the run settings. Values are layered by viper
// (defaults, then the YAML file, then INVREP_* variables, then flags),
// unmarshalled into Config and validated.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrConfiguration marks invalid tunable parameters.
var ErrConfiguration = errors.New("invalid configuration")

// ScanConfig controls candidate detection.
type ScanConfig struct {
	// minimum alignment score of a candidate
	MinScore int `mapstructure:"min-score" validate:"gte=1"`

	// longest contiguous run of paired symbols a candidate must contain
	MinMatchesRun int `mapstructure:"min-matches-run" validate:"gte=0"`

	// minimum distance between two paired positions
	Offset int `mapstructure:"offset" validate:"gte=1"`

	Match     int `mapstructure:"match" validate:"gt=0"`
	Mismatch  int `mapstructure:"mismatch" validate:"lte=0"`
	GapOpen   int `mapstructure:"gap-open" validate:"lte=0"`
	GapExtend int `mapstructure:"gap-extend" validate:"lte=0"`
}

// RunConfig controls the record pipeline.
type RunConfig struct {
	// worker goroutines; 0 means one per CPU
	Threads int `mapstructure:"threads" validate:"gte=0"`

	// FASTA window size; 0 scans whole records
	ChunkSize int `mapstructure:"chunk-size" validate:"gte=0"`
	Overlap   int `mapstructure:"overlap" validate:"gte=0"`

	// bound of the per-record duplicate filter; 0 selects the default
	DedupeCap int `mapstructure:"dedupe-cap" validate:"gte=0"`

	// exit status when no repeat is reported
	NoMatchExitCode int `mapstructure:"no-match-exit-code" validate:"gte=0,lte=255"`
}

// OutputConfig controls formatting.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text tsv json jsonl yaml"`
	Sort   bool   `mapstructure:"sort"`
	Header bool   `mapstructure:"header"`
	Pretty bool   `mapstructure:"pretty"`

	// also print candidates that selection dropped
	All bool `mapstructure:"all"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
	Quiet  bool   `mapstructure:"quiet"`
}

// MetricsConfig names the prometheus textfile; empty disables the export.
type MetricsConfig struct {
	File string `mapstructure:"file"`
}

// Config is the root settings struct.
type Config struct {
	Scan    ScanConfig    `mapstructure:"scan"`
	Run     RunConfig     `mapstructure:"run"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

var validate = validator.New()

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("scan.min-score", 10)
	v.SetDefault("scan.min-matches-run", 4)
	v.SetDefault("scan.offset", 1)
	v.SetDefault("scan.match", 1)
	v.SetDefault("scan.mismatch", -2)
	v.SetDefault("scan.gap-open", -5)
	v.SetDefault("scan.gap-extend", -2)

	v.SetDefault("run.threads", 0)
	v.SetDefault("run.chunk-size", 0)
	v.SetDefault("run.overlap", 0)
	v.SetDefault("run.dedupe-cap", 0)
	v.SetDefault("run.no-match-exit-code", 0)

	v.SetDefault("output.format", "text")
	v.SetDefault("output.sort", false)
	v.SetDefault("output.header", true)
	v.SetDefault("output.pretty", false)
	v.SetDefault("output.all", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.quiet", false)

	v.SetDefault("metrics.file", "")
}

// NewViper returns a viper instance with defaults and INVREP_* environment
// lookup ("scan.min-score" reads INVREP_SCAN_MIN_SCORE).
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("invrep")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges a YAML settings file into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrConfiguration, path, err)
	}
	return nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks field ranges and cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if c.Run.ChunkSize > 0 && c.Run.Overlap >= c.Run.ChunkSize {
		return fmt.Errorf("%w: overlap (%d) must be smaller than chunk-size (%d)",
			ErrConfiguration, c.Run.Overlap, c.Run.ChunkSize)
	}
	return nil
}

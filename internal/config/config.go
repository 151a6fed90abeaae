// Package config is the run configuration of the kmerseq commands. Values
// come from cobra flags bound into Viper, KMERSEQ_* environment variables and
// an optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"kmerseq/internal/kmers"
	"kmerseq/internal/output"
)

// EnvPrefix is prepended to every key when reading the environment,
// e.g. KMERSEQ_K or KMERSEQ_MASK_QUALITY.
const EnvPrefix = "KMERSEQ"

// Config is the union of flag, environment and file settings.
type Config struct {
	// k-mer length
	K int `mapstructure:"k"`

	// raw, canonical or bit
	Mode string `mapstructure:"mode"`

	// bit mode: yield the smaller of forward and reverse-complement codes
	Canonical bool `mapstructure:"canonical"`

	// keep IUPAC ambiguity codes when normalizing
	IUPAC bool `mapstructure:"iupac"`

	// normalize sequences before extraction
	Normalize bool `mapstructure:"normalize"`

	// FASTQ bases whose quality character sorts below this one become N
	MaskQuality string `mapstructure:"mask-quality"`

	// worker goroutines, 0 means one per CPU
	Threads int `mapstructure:"threads"`

	// tsv or jsonl
	Output string `mapstructure:"output"`

	NoHeader bool `mapstructure:"no-header"`
	Verbose  bool `mapstructure:"verbose"`
	Quiet    bool `mapstructure:"quiet"`
}

// New returns a Viper instance with defaults and environment binding.
// Flags are bound by the caller with BindPFlags.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("k", 21)
	v.SetDefault("mode", kmers.ModeCanonical.String())
	v.SetDefault("canonical", false)
	v.SetDefault("iupac", false)
	v.SetDefault("normalize", false)
	v.SetDefault("mask-quality", "")
	v.SetDefault("threads", 0)
	v.SetDefault("output", output.FormatTSV)
	v.SetDefault("no-header", false)
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("config", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the file named by the "config" key, if any, then decodes and
// validates the merged settings.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every setting and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Options(); err != nil {
		errs = append(errs, err)
	}
	if c.Threads < 0 {
		errs = append(errs, fmt.Errorf("threads must be >= 0 (got %d)", c.Threads))
	}
	switch c.Output {
	case output.FormatTSV, output.FormatJSONL:
	default:
		errs = append(errs, fmt.Errorf("output must be %s or %s (got %q)", output.FormatTSV, output.FormatJSONL, c.Output))
	}
	if c.Verbose && c.Quiet {
		errs = append(errs, errors.New("verbose and quiet are mutually exclusive"))
	}
	return errors.Join(errs...)
}

// Options converts the extraction settings.
func (c Config) Options() (kmers.Options, error) {
	mode, err := kmers.ParseMode(c.Mode)
	if err != nil {
		return kmers.Options{}, err
	}
	mq, err := parseMaskQuality(c.MaskQuality)
	if err != nil {
		return kmers.Options{}, err
	}
	opt := kmers.Options{
		K:           c.K,
		Mode:        mode,
		Canonical:   c.Canonical,
		IUPAC:       c.IUPAC,
		Normalize:   c.Normalize,
		MaskQuality: mq,
	}
	return opt, opt.Validate()
}

func parseMaskQuality(s string) (byte, error) {
	switch {
	case s == "":
		return 0, nil
	case len(s) == 1 && s[0] > ' ' && s[0] <= '~':
		return s[0], nil
	}
	return 0, fmt.Errorf("mask-quality must be a single printable quality character (got %q)", s)
}

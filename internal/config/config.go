// Package config loads command-line configuration from defaults, an optional
// config file and flags, in increasing order of precedence.
package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-lpfg/dsp/model"
	"github.com/cwbudde/algo-lpfg/internal/logging"
)

// Config holds all configuration for the lpfgsim command.
type Config struct {
	Model  ModelConfig
	Axis   AxisConfig
	Output OutputConfig
	Log    LogConfig
}

// ModelConfig selects the model used to evaluate parameter rows.
type ModelConfig struct {
	Name     string // empty disables evaluation
	Kind     model.Kind
	Selector float64
}

// Enabled reports whether a model was configured.
func (m ModelConfig) Enabled() bool { return m.Name != "" }

// AxisConfig describes the evaluation wavelength axis.
type AxisConfig struct {
	Start  float64
	Stop   float64
	Points int
}

// OutputConfig controls what is printed or rendered.
type OutputConfig struct {
	Dump   bool
	Smooth int
	Plot   string
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level  zerolog.Level
	Pretty bool
}

// Flag names and the config keys they bind to.
var bindings = []struct{ key, flag string }{
	{"model.name", "model"},
	{"model.selector", "fcn"},
	{"axis.start", "start"},
	{"axis.stop", "stop"},
	{"axis.points", "points"},
	{"output.dump", "dump"},
	{"output.smooth", "smooth"},
	{"output.plot", "plot"},
	{"log.level", "log-level"},
	{"log.pretty", "pretty"},
}

// Flags returns a flag set with every configurable option plus --config.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "config file (yaml, toml or json)")
	fs.String("model", "", "evaluate parameter rows with this model (see --list)")
	fs.Float64("fcn", 0, "hybrid selector: < 0.5 lorentzian, >= 0.5 sum of halves")
	fs.Float64("start", 1500, "first wavelength of the evaluation axis (nm)")
	fs.Float64("stop", 1600, "last wavelength of the evaluation axis (nm)")
	fs.Int("points", 1001, "number of samples on the evaluation axis")
	fs.Bool("dump", false, "print simulated curves as wavelength;transmission pairs")
	fs.Int("smooth", 0, "moving-average width applied to measured spectra (0 = off)")
	fs.String("plot", "", "render all series to this file (.svg, .png, .pdf)")
	fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	fs.Bool("pretty", true, "human-readable log output")
	fs.Bool("list", false, "list available models and exit")
	return fs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("model.name", "")
	v.SetDefault("model.selector", 0.0)
	v.SetDefault("axis.start", 1500.0)
	v.SetDefault("axis.stop", 1600.0)
	v.SetDefault("axis.points", 1001)
	v.SetDefault("output.dump", false)
	v.SetDefault("output.smooth", 0)
	v.SetDefault("output.plot", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", true)
}

// Load resolves configuration. The config file named by the --config flag is
// read from fsys; flags the user set override it.
func Load(fsys afero.Fs, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if fsys != nil {
		v.SetFs(fsys)
	}
	setDefaults(v)

	if flags != nil {
		for _, b := range bindings {
			if f := flags.Lookup(b.flag); f != nil {
				if err := v.BindPFlag(b.key, f); err != nil {
					return nil, fmt.Errorf("config: bind %s: %w", b.flag, err)
				}
			}
		}
		if path, err := flags.GetString("config"); err == nil && path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config

	cfg.Model.Name = v.GetString("model.name")
	cfg.Model.Selector = v.GetFloat64("model.selector")
	if cfg.Model.Name != "" {
		k, err := model.ParseKind(cfg.Model.Name)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cfg.Model.Kind = k
	}

	cfg.Axis.Start = v.GetFloat64("axis.start")
	cfg.Axis.Stop = v.GetFloat64("axis.stop")
	cfg.Axis.Points = v.GetInt("axis.points")
	if cfg.Axis.Points < 2 {
		return nil, fmt.Errorf("config: points must be >= 2: %d", cfg.Axis.Points)
	}

	cfg.Output.Dump = v.GetBool("output.dump")
	cfg.Output.Smooth = v.GetInt("output.smooth")
	if cfg.Output.Smooth < 0 {
		return nil, fmt.Errorf("config: smooth must be >= 0: %d", cfg.Output.Smooth)
	}
	cfg.Output.Plot = v.GetString("output.plot")

	lvl, err := logging.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Log.Level = lvl
	cfg.Log.Pretty = v.GetBool("log.pretty")

	return &cfg, nil
}

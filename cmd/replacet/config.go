package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/wvell/replacet"
)

const (
	defaultConfigFile = "replacet.toml"
	dotenvFile        = ".env"

	envRoot    = "REPLACET_ROOT"
	envBaseDir = "REPLACET_BASE_DIR"
	envLocale  = "REPLACET_LOCALE"
)

// loadConfig reads the configuration file, then applies the environment and finally the
// flags that were set on the command line.
//
// A missing configuration file is only an error when its path was given explicitly.
func loadConfig(fs afero.Fs, flags *pflag.FlagSet) (replacet.Config, error) {
	var cfg replacet.Config

	path, err := flags.GetString("config")
	if err != nil {
		return cfg, err
	}

	data, err := afero.ReadFile(fs, path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", replacet.ErrConfiguration, path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !flags.Changed("config"):
	default:
		return cfg, fmt.Errorf("%w: %w", replacet.ErrConfiguration, err)
	}

	dotenv, err := readDotenv(fs)
	if err != nil {
		return cfg, err
	}

	for env, field := range map[string]*string{
		envRoot:    &cfg.Root,
		envBaseDir: &cfg.BaseDir,
		envLocale:  &cfg.Locale,
	} {
		// The environment wins over .env, as with godotenv.Load.
		v := os.Getenv(env)
		if v == "" {
			v = dotenv[env]
		}
		if v != "" {
			*field = v
		}
	}

	for name, field := range map[string]*string{
		"root":     &cfg.Root,
		"base-dir": &cfg.BaseDir,
		"locale":   &cfg.Locale,
	} {
		if !flags.Changed(name) {
			continue
		}

		if *field, err = flags.GetString(name); err != nil {
			return cfg, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// readDotenv parses the .env file of the working directory. It is optional.
func readDotenv(fs afero.Fs) (map[string]string, error) {
	f, err := fs.Open(dotenvFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", replacet.ErrConfiguration, err)
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", replacet.ErrConfiguration, dotenvFile, err)
	}

	return env, nil
}

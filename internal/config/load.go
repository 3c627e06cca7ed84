package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "GOLF_CONFIG"
	EnvSeed       = "GOLF_SEED"
)

// Load reads a .env file if present, then applies the TOML tuning file named
// by GOLF_CONFIG (if any) on top of Defaults, and finally GOLF_SEED.
func Load() (Params, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Params{}, fmt.Errorf("load .env: %w", err)
	}

	p := Defaults()
	if path := GetEnv(EnvConfigPath, ""); path != "" {
		if err := p.DecodeFile(path); err != nil {
			return Params{}, err
		}
	}
	p.Seed = GetEnvInt64(EnvSeed, p.Seed)

	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("invalid course parameters: %w", err)
	}
	return p, nil
}

// DecodeFile overrides p with the fields present in the TOML file at path.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func (p *Params) DecodeFile(path string) error {
	md, err := toml.DecodeFile(path, p)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return checkUndecoded(path, md)
}

// Decode overrides p with the fields present in the TOML document.
func (p *Params) Decode(doc string) error {
	md, err := toml.Decode(doc, p)
	if err != nil {
		return fmt.Errorf("decode tuning: %w", err)
	}
	return checkUndecoded("tuning", md)
}

func checkUndecoded(source string, md toml.MetaData) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		return fmt.Errorf("%s: unknown keys %v", source, keys)
	}
	return nil
}

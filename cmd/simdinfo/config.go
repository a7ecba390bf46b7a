package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/coregx/simdint"
)

// recordConfig describes the layout of a records file.
type recordConfig struct {
	Parser    simdint.Config
	Separator byte
	EOL       byte
}

type fileConfig struct {
	MaxLevel  string `toml:"max_level"`
	Separator string `toml:"separator"`
	EOL       string `toml:"eol"`
}

func defaultRecordConfig() recordConfig {
	return recordConfig{
		Parser:    simdint.DefaultConfig(),
		Separator: ',',
		EOL:       '\n',
	}
}

// loadRecordConfig reads a TOML file. Keys that are not defined keep their
// defaults.
func loadRecordConfig(path string) (recordConfig, error) {
	cfg := defaultRecordConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return recordConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("max_level") {
		l, err := parseLevel(raw.MaxLevel)
		if err != nil {
			return recordConfig{}, err
		}
		cfg.Parser.MaxLevel = l
	}

	if meta.IsDefined("separator") {
		if cfg.Separator, err = singleByte("separator", raw.Separator); err != nil {
			return recordConfig{}, err
		}
	}

	if meta.IsDefined("eol") {
		if cfg.EOL, err = singleByte("eol", raw.EOL); err != nil {
			return recordConfig{}, err
		}
	}

	if err := cfg.Parser.Validate(); err != nil {
		return recordConfig{}, err
	}
	return cfg, nil
}

// parseLevel maps a level name such as "sse4.2" to its Level.
func parseLevel(name string) (simdint.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for l := simdint.LevelScalar; l.Valid(); l++ {
		if l.String() == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("parse max_level: unknown level %q", name)
}

func singleByte(key, s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("parse %s: want a single byte, got %q", key, s)
	}
	if c := s[0]; c >= '0' && c <= '9' {
		return 0, fmt.Errorf("parse %s: digit %q cannot separate fields", key, s)
	}
	return s[0], nil
}

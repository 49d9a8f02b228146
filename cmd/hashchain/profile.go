package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/coregx/hashchain/meta"
	"gopkg.in/yaml.v3"
)

// Profile is a YAML tuning profile. Unset fields keep the value of the
// preset, or of the default configuration when no preset is named.
type Profile struct {
	Preset      string `yaml:"preset"`
	Q           *int   `yaml:"q"`
	TableBits   *uint  `yaml:"table_bits"`
	AnchorShift *uint  `yaml:"anchor_shift"`
	ChainShift  *uint  `yaml:"chain_shift"`
	RollShift   *uint  `yaml:"roll_shift"`
	Strategy    string `yaml:"strategy"`
	Memchr      *bool  `yaml:"memchr"`
}

// LoadProfile reads a profile from path. Unknown keys are rejected so a
// misspelt parameter is not silently ignored.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return p, nil
}

// Config resolves the profile into a validated search configuration.
func (p Profile) Config() (meta.Config, error) {
	config := meta.DefaultConfig()
	if p.Preset != "" {
		c, err := meta.Preset(p.Preset)
		if err != nil {
			return meta.Config{}, err
		}
		config = c
	}

	if p.Q != nil {
		config.Q = *p.Q
	}
	if p.TableBits != nil {
		config.TableBits = *p.TableBits
	}
	if p.AnchorShift != nil {
		config.AnchorShift = *p.AnchorShift
	}
	if p.ChainShift != nil {
		config.ChainShift = *p.ChainShift
	}
	if p.RollShift != nil {
		config.RollShift = *p.RollShift
	}
	if p.Strategy != "" {
		s, err := meta.ParseStrategy(p.Strategy)
		if err != nil {
			return meta.Config{}, err
		}
		config.Strategy = s
	}
	if p.Memchr != nil {
		config.EnableMemchr = *p.Memchr
	}

	if err := config.Validate(); err != nil {
		return meta.Config{}, err
	}
	return config, nil
}

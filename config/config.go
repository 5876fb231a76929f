// Package config loads tuning profiles: the rules of a match, the planner's
// weights and the bot's pace, read from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plus3/blockbattle/bot"
	"github.com/plus3/blockbattle/planner"
	"github.com/plus3/blockbattle/rules"
)

// Profile is a complete tuning for one match.
type Profile struct {
	Name    string         `yaml:"name"`
	Seed    uint64         `yaml:"seed"`
	Rules   rules.Config   `yaml:"rules"`
	Planner planner.Config `yaml:"planner"`
	Bot     bot.Config     `yaml:"bot"`
}

// Default is the reference profile.
func Default() Profile {
	return Profile{
		Name:    "default",
		Rules:   rules.DefaultConfig(),
		Planner: planner.DefaultConfig(),
		Bot:     bot.DefaultConfig(),
	}
}

// Normalize clamps every section into range.
func (p *Profile) Normalize() {
	p.Rules.Normalize()
	p.Planner.Normalize()
	p.Bot.Normalize()
}

// Parse reads a profile from r. Fields missing from the document keep their
// default values; unknown fields are an error.
func Parse(r io.Reader) (Profile, error) {
	p := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	p.Normalize()
	return p, nil
}

// Load reads a profile from the file at path.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	p, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Marshal renders p as YAML.
func Marshal(p Profile) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	return buf.Bytes(), nil
}

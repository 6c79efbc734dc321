package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is one named API target in the profiles file.
type Profile struct {
	BaseURL   string `yaml:"base_url"`
	TokenFile string `yaml:"token_file,omitempty"`
}

// Profiles is the on-disk profiles file: a set of named API targets plus
// the name of the one selected by default.
type Profiles struct {
	Default  string             `yaml:"default,omitempty"`
	Profiles map[string]Profile `yaml:"profiles"`
}

// LoadProfiles reads a YAML profiles file. A missing file yields an empty
// Profiles value rather than an error, since the file is optional.
func LoadProfiles(path string) (*Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Profiles{}, nil
		}
		return nil, errors.Join(ErrReadingProfiles, err)
	}

	var p Profiles
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Join(ErrParsingProfiles, err)
	}
	return &p, nil
}

// Select returns the named profile, falling back to the file's default when
// name is empty.
func (p *Profiles) Select(name string) (Profile, bool) {
	if name == "" {
		name = p.Default
	}
	if name == "" {
		return Profile{}, false
	}
	profile, ok := p.Profiles[name]
	return profile, ok
}

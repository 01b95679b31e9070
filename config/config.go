package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Profile holds per-user defaults, usually from ~/.config/todonet/profile.yml.
type Profile struct {
	BaseURL  string            `yaml:"base_url"`
	Headers  map[string]string `yaml:"headers"`
	LogLevel string            `yaml:"log_level"`
}

// Load reads the profile at path. A missing file yields an empty profile
// unless required is set.
func Load(path string, required bool) (*Profile, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return &Profile{}, nil
		}
		return nil, errors.Wrapf(err, "reading profile '%s'", path)
	}
	return Parse(data)
}

func Parse(data []byte) (*Profile, error) {
	profile := &Profile{}
	if err := yaml.UnmarshalStrict(data, profile); err != nil {
		return nil, errors.Wrap(err, "parsing profile")
	}
	return profile, nil
}

// DefaultPath returns the profile location used when --config is not given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todonet", "profile.yml")
}

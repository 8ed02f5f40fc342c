package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// RunProfile is an optional sidecar YAML file that overrides run settings
// without editing the network-description file or the command line: a
// plain struct unmarshalled with yaml.v3, with zero-valued fields meaning
// "no override".
type RunProfile struct {
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
	DotPath  string `yaml:"dot_path"`
}

func loadRunProfile(path string) (*RunProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var profile RunProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// apply overlays the profile's non-zero fields onto the current seed,
// dotPath and log level (passed as *logLevel so the caller can re-parse
// its logrus level afterward), and returns the effective seed and dotPath.
func (p *RunProfile) apply(seed int64, dotPath string, logLevel *string) (int64, string) {
	if p.Seed != 0 {
		seed = p.Seed
	}
	if p.DotPath != "" {
		dotPath = p.DotPath
	}
	if p.LogLevel != "" {
		*logLevel = p.LogLevel
	}
	return seed, dotPath
}

package host

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config tunes the desktop harness. Every field has a sensible zero
// so a missing file just means defaults.
type Config struct {
	// Scale multiplies the 800x480 surface into the window size.
	Scale float64 `yaml:"scale"`
	// Seed pins every plugin run's RNG when nonzero.
	Seed int64 `yaml:"seed"`
	// Questions is the quiz plugin's bank directory.
	Questions string `yaml:"questions"`
	// Plugin launches straight into the named plugin, skipping the
	// launcher.
	Plugin string `yaml:"plugin"`
}

func DefaultConfig() Config {
	return Config{
		Scale:     1,
		Questions: "questions",
	}
}

// LoadConfig reads the harness config.
// Search order: customPath -> ~/.llizardgui/config.yaml ->
// ./llizardgui.yaml -> defaults. Missing or malformed files degrade
// to defaults with one warning line.
func LoadConfig(customPath string) Config {
	paths := []string{customPath}
	if customPath == "" {
		paths = []string{userConfigPath(), "llizardgui.yaml"}
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			if customPath != "" {
				log.Printf("Warning: could not read config %s: %v", path, err)
			}
			continue
		}
		cfg := DefaultConfig()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Printf("Warning: could not parse config %s: %v", path, err)
			continue
		}
		return normalize(cfg)
	}
	return DefaultConfig()
}

func normalize(cfg Config) Config {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.Scale > 4 {
		cfg.Scale = 4
	}
	if cfg.Questions == "" {
		cfg.Questions = "questions"
	}
	return cfg
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".llizardgui", "config.yaml")
}

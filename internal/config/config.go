// Package config holds the tool configuration: which vendor CLIs to
// invoke, the registry and platform endpoints, and polling behavior.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/json"
	toml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var parserMap = map[string]koanf.Parser{
	".yaml": yaml.Parser(),
	".yml":  yaml.Parser(),
	".toml": toml.Parser(),
	".json": json.Parser(),
}

// searchPaths are probed, in order, when no config file is given.
var searchPaths = []string{
	"kubedeploy.yaml",
	"kubedeploy.yml",
	"kubedeploy.toml",
	"kubedeploy.json",
	"/etc/kubedeploy/kubedeploy.yaml",
	"/etc/kubedeploy/kubedeploy.toml",
}

type Platform struct {
	// CLI is the cloud platform CLI binary.
	CLI string `koanf:"cli"`

	// API is the platform login endpoint.
	API string `koanf:"api"`

	// Installer is piped to a shell by install-tools.
	Installer string `koanf:"installer"`

	Plugin     string `koanf:"plugin"`
	PluginRepo string `koanf:"plugin_repo"`
}

type Registry struct {
	// Host is the container registry images are tagged against.
	Host string `koanf:"host"`
}

type Database struct {
	// Service is the managed service offering name.
	Service string `koanf:"service"`

	// Plan is the service plan (tier).
	Plan string `koanf:"plan"`
}

type Poll struct {
	// Interval between cluster state checks.
	Interval time.Duration `koanf:"interval"`

	// Attempts bounds the cluster readiness wait.
	Attempts uint `koanf:"attempts"`
}

type Config struct {
	Platform Platform `koanf:"platform"`
	Registry Registry `koanf:"registry"`
	Database Database `koanf:"database"`

	// DockerCLI and KubectlCLI name the container engine and
	// orchestrator binaries.
	DockerCLI  string `koanf:"docker_cli"`
	KubectlCLI string `koanf:"kubectl_cli"`

	// AppPort is the port the application container listens on.
	AppPort int `koanf:"app_port"`

	// Manifest is applied from the working directory by create-db.
	Manifest string `koanf:"manifest"`

	Poll Poll `koanf:"poll"`

	// SeedItems are posted to the application by populate-db.
	SeedItems []string `koanf:"seed_items"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Platform: Platform{
			CLI:        "bx",
			API:        "https://api.ng.bluemix.net",
			Installer:  "https://clis.ng.bluemix.net/install/linux",
			Plugin:     "container-service",
			PluginRepo: "Bluemix",
		},
		Registry: Registry{
			Host: "registry.ng.bluemix.net",
		},
		Database: Database{
			Service: "cloudantNoSQLDB",
			Plan:    "Lite",
		},
		DockerCLI:  "docker",
		KubectlCLI: "kubectl",
		AppPort:    8080,
		Manifest:   "manifest.yml",
		Poll: Poll{
			Interval: 60 * time.Second,
			Attempts: 60,
		},
		SeedItems: []string{
			"create a cluster",
			"deploy the app",
			"bind a database",
		},
	}
}

// Load reads configFile (or the first file found on the search paths
// when configFile is empty) and merges it over the defaults. A missing
// file is not an error.
func Load(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile == "" {
		log.Debug("no config file found, using defaults")
		return Default(), nil
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Debug("config file does not exist", "path", configFile)
		return Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(configFile))
	parser, ok := parserMap[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported config file format: %s", configFile)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), parser); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", configFile, err)
	}

	// File values win; defaults fill whatever the file left out.
	if err := mergo.Merge(cfg, Default()); err != nil {
		return nil, fmt.Errorf("failed to merge config defaults: %w", err)
	}

	log.Info("loaded config file", "path", configFile)
	return cfg, nil
}

func findConfigFile() string {
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

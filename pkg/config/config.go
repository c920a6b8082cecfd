package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default locations of the external tools. Overridable per host via the
// `tools` section.
const (
	defaultKeytool = "keytool"
	defaultOpenSSL = "openssl"
)

// Config holds all configuration for the keystore rotation tool.
type Config struct {
	// Identity is the subject name requested from the issuance agent.
	Identity string `yaml:"identity"`
	// WorkspaceDir is a local directory for the rotation state file and
	// transient archives.
	WorkspaceDir string        `yaml:"workspace_dir"`
	Issuer       IssuerConfig  `yaml:"issuer"`
	Paths        PathsConfig   `yaml:"paths"`
	Store        StoreConfig   `yaml:"store"`
	Service      ServiceConfig `yaml:"service"`
	Tools        ToolsConfig   `yaml:"tools"`
	SSH          SSHConfig     `yaml:"ssh"`
}

// IssuerConfig describes how to invoke the certificate issuance agent.
type IssuerConfig struct {
	// Command is the agent binary to run.
	Command string `yaml:"command"`
	// ExtraArgs are prepended before the identity and output paths.
	ExtraArgs []string `yaml:"extra_args"`
}

// PathsConfig holds the fixed paths the issuance agent writes to.
type PathsConfig struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

// StoreConfig describes the service's trust store.
type StoreConfig struct {
	Path  string `yaml:"path"`
	Alias string `yaml:"alias"`
	// Password may be left empty in the file and supplied through the
	// KEYSTORE_PASSWORD environment variable instead.
	Password string `yaml:"password"`
	// KeyPassword defaults to the store password when empty.
	KeyPassword string `yaml:"key_password"`
}

// ServiceConfig identifies the dependent service and its restart timeouts.
type ServiceConfig struct {
	Name                string `yaml:"name"`
	StopTimeoutSeconds  int    `yaml:"stop_timeout_seconds"`
	StartTimeoutSeconds int    `yaml:"start_timeout_seconds"`
}

// ToolsConfig holds paths of the external keystore and packaging tools.
type ToolsConfig struct {
	Keytool string `yaml:"keytool"`
	OpenSSL string `yaml:"openssl"`
}

// SSHConfig holds SSH connection details. When Host is set, all
// collaborator commands and store file operations run on that host.
type SSHConfig struct {
	Host    string `yaml:"host"`
	User    string `yaml:"user"`
	KeyPath string `yaml:"key_path"`
}

// LoadConfig reads configuration from a YAML file. A .env file next to the
// process, if present, is loaded into the environment first.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(file, config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.WorkspaceDir == "" {
		c.WorkspaceDir = "workspace"
	}
	if c.Tools.Keytool == "" {
		c.Tools.Keytool = defaultKeytool
	}
	if c.Tools.OpenSSL == "" {
		c.Tools.OpenSSL = defaultOpenSSL
	}
	if c.Store.Password == "" {
		c.Store.Password = os.Getenv("KEYSTORE_PASSWORD")
	}
	if c.Store.KeyPassword == "" {
		c.Store.KeyPassword = c.Store.Password
	}
	if c.Service.StopTimeoutSeconds <= 0 {
		c.Service.StopTimeoutSeconds = 60
	}
	if c.Service.StartTimeoutSeconds <= 0 {
		c.Service.StartTimeoutSeconds = 120
	}
}

// Validate checks that the configuration is complete enough to rotate.
func (c *Config) Validate() error {
	if c.Identity == "" {
		return fmt.Errorf("config: identity is required")
	}
	if c.Issuer.Command == "" {
		return fmt.Errorf("config: issuer.command is required")
	}
	if c.Paths.Cert == "" || c.Paths.Key == "" {
		return fmt.Errorf("config: paths.cert and paths.key are required")
	}
	if c.Store.Path == "" {
		return fmt.Errorf("config: store.path is required")
	}
	if c.Store.Alias == "" {
		return fmt.Errorf("config: store.alias is required")
	}
	if c.Store.Password == "" {
		return fmt.Errorf("config: store password not set (store.password or KEYSTORE_PASSWORD)")
	}
	if c.Service.Name == "" {
		return fmt.Errorf("config: service.name is required")
	}
	return nil
}

// Remote reports whether the controller lives on a remote host.
func (c *Config) Remote() bool {
	return c.SSH.Host != ""
}

// ArchiveDir returns where the transient archive is written on the
// controller host.
func (c *Config) ArchiveDir() string {
	if c.Remote() {
		return "/tmp"
	}
	return c.WorkspaceDir
}

// StopTimeout returns the service stop timeout as a duration.
func (c *Config) StopTimeout() time.Duration {
	return time.Duration(c.Service.StopTimeoutSeconds) * time.Second
}

// StartTimeout returns the service start timeout as a duration.
func (c *Config) StartTimeout() time.Duration {
	return time.Duration(c.Service.StartTimeoutSeconds) * time.Second
}

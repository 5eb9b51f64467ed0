package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Site    SiteConfig    `mapstructure:"site"`
	Content ContentConfig `mapstructure:"content"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	StaticDir string `mapstructure:"static_dir"`
}

// SiteConfig holds site-wide values shown in the page chrome and metadata
type SiteConfig struct {
	Name        string `mapstructure:"name"`
	URL         string `mapstructure:"url"`
	Description string `mapstructure:"description"`
	Author      string `mapstructure:"author"`
}

// ContentConfig says where project cards come from
type ContentConfig struct {
	ProjectsFile string `mapstructure:"projects_file"` // empty uses the built-in projects
	Watch        bool   `mapstructure:"watch"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const envPrefix = "PORTFOLIO"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.static_dir", "static")
	v.SetDefault("site.name", "ishan.sh")
	v.SetDefault("site.url", "http://localhost:8080")
	v.SetDefault("site.description", "Projects, notes and experiments.")
	v.SetDefault("site.author", "Ishan")
	v.SetDefault("content.projects_file", "")
	v.SetDefault("content.watch", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads configuration from defaults, an optional YAML file at path and
// the environment, in increasing order of precedence. Environment keys use the
// PORTFOLIO_ prefix (PORTFOLIO_SERVER_ADDR); SERVER_ADDR is also honoured
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.addr", envPrefix+"_SERVER_ADDR", "SERVER_ADDR"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that have no usable fallback
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is empty"))
	}
	if c.Site.Name == "" {
		errs = append(errs, errors.New("site.name is empty"))
	}
	if c.Content.Watch && c.Content.ProjectsFile == "" {
		errs = append(errs, errors.New("content.watch needs content.projects_file"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

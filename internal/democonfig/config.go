// Package democonfig loads the YAML configuration for cmd/lrmap-demo, in
// the same plain-struct-plus-os.ExpandEnv style as the teacher's
// internal/config.Load.
package democonfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ServerCfg configures the admin HTTP surface.
type ServerCfg struct {
	HTTPAddr        string `yaml:"httpAddr"`
	RefreshQPSLimit uint32 `yaml:"refreshQpsLimit"`
}

// RedisCfg configures the change feed's Redis connection.
type RedisCfg struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Channel  string `yaml:"channel"`
}

// Config is the full demo process configuration.
type Config struct {
	Instance string   `yaml:"instance"` // label attached to every metric this process emits
	Server   ServerCfg `yaml:"server"`
	Redis    RedisCfg  `yaml:"redis"`
}

// Load reads path, expands ${VAR} references against the environment, and
// unmarshals the result as YAML.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	expanded := os.ExpandEnv(string(b))
	var c Config
	if err := yaml.Unmarshal([]byte(expanded), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

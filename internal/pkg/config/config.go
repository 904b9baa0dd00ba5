package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Account is a management UI login backed by the config file, not by the
// record store: the store holds directory data only.
type Account struct {
	Login        string `yaml:"login"`
	PasswordHash string `yaml:"password_hash"`
	Role         string `yaml:"role"`
}

type Config struct {
	StoreBaseURL   string    `yaml:"store_base_url"`
	StoreProjectID string    `yaml:"store_project_id"`
	StoreAPIKey    string    `yaml:"store_api_key"`
	JWTKey         string    `yaml:"jwt_key"`
	Accounts       []Account `yaml:"accounts"`
	AllowedOrigins []string  `yaml:"allowed_origins"`
}

func NewConfig(path string) (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	if err := yaml.Unmarshal(yamlFile, &c); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}

	if c.StoreBaseURL == "" || c.StoreProjectID == "" || c.StoreAPIKey == "" {
		return nil, errors.New("missing required record store configuration")
	}
	if c.JWTKey == "" {
		return nil, errors.New("missing jwt_key")
	}

	return &c, nil
}

package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gqlblog/internal/flagx"
	"github.com/dmitrijs2005/gqlblog/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration, shared by the JSON
// and YAML decoders. Pointer fields distinguish "absent" from zero values so
// a partial file only overrides what it names.
type FileConfig struct {
	EndpointAddrHTTP     *string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	EndpointAddrGRPC     *string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	StorageBackend       *string         `json:"storage_backend" yaml:"storage_backend"`
	DatabaseDSN          *string         `json:"database_dsn" yaml:"database_dsn"`
	SessionBackend       *string         `json:"session_backend" yaml:"session_backend"`
	RedisAddr            *string         `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword        *string         `json:"redis_password" yaml:"redis_password"`
	RedisDB              *int            `json:"redis_db" yaml:"redis_db"`
	SecretKey            *string         `json:"secret_key" yaml:"secret_key"`
	SessionTTL           *timex.Duration `json:"session_ttl" yaml:"session_ttl"`
	CookieName           *string         `json:"cookie_name" yaml:"cookie_name"`
	CookieSecure         *bool           `json:"cookie_secure" yaml:"cookie_secure"`
	GraphiQL             *bool           `json:"graphiql" yaml:"graphiql"`
	EnforcePostOwnership *bool           `json:"enforce_post_ownership" yaml:"enforce_post_ownership"`
	MaxParallelism       *int            `json:"max_parallelism" yaml:"max_parallelism"`
	LogLevel             *string         `json:"log_level" yaml:"log_level"`
}

// parseFile loads the config file named by -c/-config, if any. Files ending
// in .yaml or .yml are decoded as YAML, everything else as JSON. An
// unreadable or malformed file panics.
func parseFile(config *Config) {

	// try flags
	configFile := flagx.ConfigFileFlag()

	// nothing to load
	if configFile == "" {
		return
	}

	file, err := os.ReadFile(configFile)
	if err != nil {
		panic(err)
	}

	c := &FileConfig{}
	if flagx.IsYAML(configFile) {
		err = yaml.Unmarshal(file, c)
	} else {
		err = json.Unmarshal(file, c)
	}
	if err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *FileConfig) apply(config *Config) {
	setIf(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.StorageBackend, c.StorageBackend)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SessionBackend, c.SessionBackend)
	setIf(&config.RedisAddr, c.RedisAddr)
	setIf(&config.RedisPassword, c.RedisPassword)
	setIf(&config.RedisDB, c.RedisDB)
	setIf(&config.SecretKey, c.SecretKey)
	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
	setIf(&config.CookieName, c.CookieName)
	setIf(&config.CookieSecure, c.CookieSecure)
	setIf(&config.GraphiQL, c.GraphiQL)
	setIf(&config.EnforcePostOwnership, c.EnforcePostOwnership)
	setIf(&config.MaxParallelism, c.MaxParallelism)
	setIf(&config.LogLevel, c.LogLevel)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

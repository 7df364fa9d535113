package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable the server reads.
const EnvPrefix = "GQLBLOG_"

// parseEnv overlays GQLBLOG_* environment variables. A .env file in the
// working directory is loaded first when present; variables already set in
// the environment win over it. Malformed numeric, boolean or duration values
// panic, as malformed flags do.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	lookupString("HTTP_ADDR", &config.EndpointAddrHTTP)
	lookupString("GRPC_ADDR", &config.EndpointAddrGRPC)
	lookupString("STORAGE", &config.StorageBackend)
	lookupString("DATABASE_DSN", &config.DatabaseDSN)
	lookupString("SESSION_BACKEND", &config.SessionBackend)
	lookupString("REDIS_ADDR", &config.RedisAddr)
	lookupString("REDIS_PASSWORD", &config.RedisPassword)
	lookupParsed("REDIS_DB", &config.RedisDB, strconv.Atoi)
	lookupString("SECRET_KEY", &config.SecretKey)
	lookupParsed("SESSION_TTL", &config.SessionTTL, time.ParseDuration)
	lookupString("COOKIE_NAME", &config.CookieName)
	lookupParsed("COOKIE_SECURE", &config.CookieSecure, strconv.ParseBool)
	lookupParsed("GRAPHIQL", &config.GraphiQL, strconv.ParseBool)
	lookupParsed("ENFORCE_POST_OWNERSHIP", &config.EnforcePostOwnership, strconv.ParseBool)
	lookupParsed("MAX_PARALLELISM", &config.MaxParallelism, strconv.Atoi)
	lookupString("LOG_LEVEL", &config.LogLevel)
}

func lookupString(name string, dst *string) {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok {
		*dst = v
	}
}

func lookupParsed[T any](name string, dst *T, parse func(string) (T, error)) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return
	}
	parsed, err := parse(v)
	if err != nil {
		panic(fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
	}
	*dst = parsed
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gqlblog/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-g string   gRPC health bind address (e.g., ":50051")
//	-m string   storage backend: postgres | memory
//	-d string   PostgreSQL DSN
//	-b string   session backend: redis | memory
//	-r string   Redis address
//	-p string   Redis password
//	-s string   cookie signing secret
//	-t int      session TTL, hours
//	-k string   session cookie name
//	-n int      max parallel root query fields
//	-l string   log level: debug | info | warn | error
//	-secure     mark the session cookie Secure
//	-i          serve GraphiQL
//	-o          enforce post ownership
//
// Only the flags above are picked out of os.Args (see flagx.FilterArgs), so
// other flag sets in the process do not collide with these.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-a", "-g", "-m", "-d", "-b", "-r", "-p", "-s", "-t", "-k", "-n", "-l"},
		"-secure", "-i", "-o")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health address and port")
	fs.StringVar(&config.StorageBackend, "m", config.StorageBackend, "storage backend (postgres|memory)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SessionBackend, "b", config.SessionBackend, "session backend (redis|memory)")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.RedisPassword, "p", config.RedisPassword, "redis password")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionTTL := fs.Int("t", int(config.SessionTTL.Hours()), "session_ttl (in hours)")

	fs.StringVar(&config.CookieName, "k", config.CookieName, "session cookie name")
	fs.IntVar(&config.MaxParallelism, "n", config.MaxParallelism, "max parallel root query fields")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug|info|warn|error)")
	fs.BoolVar(&config.CookieSecure, "secure", config.CookieSecure, "secure session cookie")
	fs.BoolVar(&config.GraphiQL, "i", config.GraphiQL, "serve GraphiQL at /graphiql")
	fs.BoolVar(&config.EnforcePostOwnership, "o", config.EnforcePostOwnership, "enforce post ownership")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Hour
}

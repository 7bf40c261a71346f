package config

import (
	"net"
	"strings"
)

// lookupFunc has the signature of os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// parseEnv applies environment overrides.
//
//	PORT            replaces the port of EndpointAddrHTTP, keeping the host
//	STORAGE_TYPE    DATABASE_DSN  MONGO_URI  MONGO_DATABASE
//	SQLITE_PATH     CORS_ORIGIN   LOG_LEVEL
//	CI              any non-empty value enables CI mode
//	APP_ENV         "development" enables development mode
func parseEnv(config *Config, lookup lookupFunc) {
	if port, ok := lookup("PORT"); ok && port != "" {
		host, _, err := net.SplitHostPort(config.EndpointAddrHTTP)
		if err != nil {
			host = ""
		}
		config.EndpointAddrHTTP = net.JoinHostPort(host, port)
	}

	envString(lookup, "STORAGE_TYPE", &config.StorageType)
	envString(lookup, "DATABASE_DSN", &config.DatabaseDSN)
	envString(lookup, "MONGO_URI", &config.MongoURI)
	envString(lookup, "MONGO_DATABASE", &config.MongoDatabase)
	envString(lookup, "SQLITE_PATH", &config.SQLitePath)
	envString(lookup, "LOG_LEVEL", &config.LogLevel)

	// CORS_ORIGIN may be set to an empty string on purpose to turn CORS off.
	if origin, ok := lookup("CORS_ORIGIN"); ok {
		config.CORSOrigin = origin
	}

	if ci, ok := lookup("CI"); ok && ci != "" {
		config.CIMode = true
	}
	if env, ok := lookup("APP_ENV"); ok && strings.EqualFold(env, "development") {
		config.DevelopmentMode = true
	}
}

func envString(lookup lookupFunc, key string, dst *string) {
	if v, ok := lookup(key); ok && v != "" {
		*dst = v
	}
}

package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/flagx"
	"github.com/dmitrijs2005/credkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields let a
// file override only what it mentions; everything else keeps its default.
type JsonConfig struct {
	EndpointAddrHTTP *string         `json:"endpoint_addr_http"`
	StorageType      *string         `json:"storage_type"`
	DatabaseDSN      *string         `json:"database_dsn"`
	MongoURI         *string         `json:"mongo_uri"`
	MongoDatabase    *string         `json:"mongo_database"`
	SQLitePath       *string         `json:"sqlite_path"`
	CORSOrigin       *string         `json:"cors_origin"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson loads values from the JSON file named by -c/-config (or the
// CONFIG environment variable) into config. Without a file it does
// nothing. An unreadable file or invalid JSON panics.
func parseJson(config *Config, args []string) {

	jsonConfigFile := flagx.ConfigFile(args)

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.StorageType, c.StorageType)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.MongoURI, c.MongoURI)
	setString(&config.MongoDatabase, c.MongoDatabase)
	setString(&config.SQLitePath, c.SQLitePath)
	setString(&config.CORSOrigin, c.CORSOrigin)
	setString(&config.LogLevel, c.LogLevel)
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

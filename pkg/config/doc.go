// Package config loads binary configuration from environment variables.
//
// Values may come from the process environment or from .env files read with
// github.com/joho/godotenv. Parsing into tagged structs is done by
// github.com/caarlos0/env/v11.
//
//	type Config struct {
//	    Users int  `env:"POPDB_USERS" envDefault:"20"`
//	    DryRun bool `env:"POPDB_DRY_RUN"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Variables already present in the process environment win over values read
// from .env files.
package config

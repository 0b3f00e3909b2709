// Package config provides configuration management for the color API.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded with godotenv). Defaults come from `default` struct
// tags on each partial configuration.
//
// # Configuration Structure
//
//   - Server: HTTP port, body limit, swagger and metrics toggles (SERVER_*)
//   - Log: Logging level and format (LOG_*)
//
// PORT is accepted as an alias of SERVER_PORT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config

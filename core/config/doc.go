// Package config provides configuration management for the BOM matcher.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, upload limit)
//   - Database: MySQL or SQLite connection details for database stock levels
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Match: Designator matching rules (strictness, explosion, columns, classifier)
//   - Stock: Stock overlay source and columns
//
// Defaults come from the `default` struct tags; environment variables map to
// nested keys by replacing dots with underscores (MATCH_STRICT -> match.strict).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Match.DesignatorColumn)
package config

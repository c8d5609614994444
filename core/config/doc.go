// Package config provides configuration management for shelfd.
//
// It utilizes Viper for loading configuration from environment variables
// and a .env file, with defaults declared as struct tags on the partial
// Config structs each package owns.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: local HTTP surface (host, port)
//   - Remote: remote catalog resource (base URL, timeout, page limit)
//   - Database: local sqlite/mysql catalog database
//   - Storage: S3/MinIO credentials for snapshot backups
//   - Log: logging level and format
//   - Catalog: validation and reconciliation policy
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Remote.BaseURL)
package config

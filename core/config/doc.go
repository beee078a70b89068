// Package config provides configuration management for pbxsync.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Project: manifest path, scan directories, group mapping, exclusions
//   - Log: logging level and format
//   - Audio: speech model, voice, and output locations for exercise audio
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Project.Manifest)
package config

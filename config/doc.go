// Package config loads reqkit configuration from YAML files, .env files and
// environment variables using Viper and godotenv.
//
// # Usage
//
//	var cfg MyConfig
//	err := config.LoadConfig("billing-api", &cfg, config.WithConfigFile("config.yml"))
//
// Environment variables carrying the REQKIT_ prefix override file values.
// Underscores map onto nesting, so REQKIT_REQUESTER_AUTH_SCHEME sets
// requester.auth.scheme and REQKIT_REQUESTER_THROTTLE_WAIT sets
// requester.throttle_wait.
package config

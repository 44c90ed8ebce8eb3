// Package config defines the application configuration structures and the
// viper-based loader that populates them from the environment and optional
// config files. Loaded configuration is validated with go-playground/validator
// struct tags before the application starts.
package config

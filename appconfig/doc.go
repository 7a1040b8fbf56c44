// Package appconfig loads runtime configuration from environment
// variables (with optional .env support) and builds the zerolog.Logger
// the CLI wires into the search packages.
package appconfig

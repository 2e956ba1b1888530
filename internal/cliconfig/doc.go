// Package cliconfig layers host configuration for appengine commands.
//
// Values are resolved in order: defaults, then the TOML file, then
// APPENGINE_* environment variables, then flags the user set explicitly.
// Watch re-reads the file while a command runs so the log level can be
// changed without a restart.
package cliconfig

// Package file provides the TOML settings file used by the CLI, HTTP
// server and MCP server. The file lives at ~/.distil/config.toml unless
// another directory is given.
package file

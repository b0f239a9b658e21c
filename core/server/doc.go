// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// listen port, the optional API key and the upload size limit for the
// comparison endpoints.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by cmd/start.go to configure Fiber.
package server

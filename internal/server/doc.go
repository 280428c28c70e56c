// Package server wires and runs the store-keeper HTTP server together with
// its background workers.
//
// It owns startup, signal handling and graceful shutdown: on SIGINT,
// SIGTERM or SIGQUIT the HTTP server drains in-flight requests within the
// configured shutdown timeout and every worker is cancelled.
package server

// Package server runs the HTTP and gRPC-health transports of the auth
// server and shuts them down gracefully on a stop signal.
package server

// Package http implements the REST surface of the auth server.
//
// Handlers decode requests, call the service layer and render the uniform
// {result, errorMessage} payload. Authentication, role checks, request
// tracing, access logging and request metrics are middleware.
package http

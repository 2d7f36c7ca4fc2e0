// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, role gating, request
// tracing, access logging, and CORS are handled in this package before
// requests are delegated to the service layer.
//
// Every response body is JSON. Errors use the uniform envelope
// {"error": "<message>"}; account payloads are sanitized before
// serialization so that password hashes never leave the process.
package http

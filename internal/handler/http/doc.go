// Package http implements the HTTP transport layer of the development notes
// API.
//
// It wires the chi router, the shared middleware chain and the notes
// handlers. Every response, successful or not, is a {data, error} envelope;
// service errors are classified into API error codes and HTTP statuses in
// errors_mapper.go.
package http

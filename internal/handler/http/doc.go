// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API: account registration, the JWT token lifecycle, user
// management, and question form submission. Authorization, logging, and
// tracing concerns are all handled at this layer before requests are
// forwarded to the service layer.
package http

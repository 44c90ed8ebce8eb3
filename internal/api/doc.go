// Package api contains the HTTP handlers for the keepnote backend. The
// handlers translate between the JSON wire format and the service layer:
// they decode and validate payloads, resolve the authenticated principal
// from the request context, enforce ownership, and map service errors to
// HTTP status codes. Business rules live below this package.
package api

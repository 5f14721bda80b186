// Package http exposes the alignment library over a JSON API.
//
// Endpoints are mounted under /v1 by Handler.Register: align, convert,
// standardize, range and weeks as POST with a JSON body, plus GET /v1/now
// and GET /healthz. Moments travel as RFC 3339 strings; naive date-times
// are attached to the request's timezone or the server's default.
package http

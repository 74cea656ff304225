// Package model holds the request and response payloads exchanged
// with API clients.
package model

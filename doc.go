// Package urlenc provides stateless helpers for URL and form encoding.
//
// This package handles percent-encoding of strings, encoding of ordered
// parameter lists into application/x-www-form-urlencoded bodies, appending
// query parameters to existing URLs, and assembly of multipart/form-data
// payloads from text and file fields. Parameter lists preserve insertion
// order, unlike [net/url.Values], making encoded output reproducible.
package urlenc

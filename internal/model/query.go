package model

import "propquery/internal/queryparser"

// ParseRequest represents a natural-language query parse request
type ParseRequest struct {
	Query string `json:"query" binding:"required"`
	City  string `json:"city,omitempty"` // Optional city hint used when the phrase names no location
}

// ParseResponse represents the parsed query plus its projection onto the
// properties search API
type ParseResponse struct {
	*queryparser.ParsedQuery
	SearchParams string `json:"searchParams"` // Encoded query string for the properties search API
	SearchURL    string `json:"searchUrl"`
	Took         int64  `json:"tookMs"` // Response time in milliseconds
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"propquery/internal/apperr"
	"propquery/internal/model"
	"propquery/internal/queryparser"
)

// QueryService handles natural-language query parsing for the search API
type QueryService struct {
	parser         *queryparser.Parser
	log            *slog.Logger
	propertiesPath string
	defaultCity    string
}

// QueryServiceOption configures a QueryService
type QueryServiceOption func(*QueryService)

// WithPropertiesPath sets the properties search endpoint used for searchUrl
func WithPropertiesPath(path string) QueryServiceOption {
	return func(s *QueryService) {
		s.propertiesPath = path
	}
}

// WithDefaultCity sets the city hint used when a request carries none
func WithDefaultCity(city string) QueryServiceOption {
	return func(s *QueryService) {
		s.defaultCity = city
	}
}

// NewQueryService creates a new query service
func NewQueryService(parser *queryparser.Parser, log *slog.Logger, opts ...QueryServiceOption) *QueryService {
	s := &QueryService{
		parser:         parser,
		log:            log,
		propertiesPath: "/api/properties",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse validates the request, parses the query and projects the filters
// onto the properties search API
func (s *QueryService) Parse(ctx context.Context, req *model.ParseRequest) (*model.ParseResponse, error) {
	startTime := time.Now()

	if req == nil || strings.TrimSpace(req.Query) == "" {
		return nil, apperr.InvalidArgument("query must be a non-empty string")
	}

	city := req.City
	if strings.TrimSpace(city) == "" {
		city = s.defaultCity
	}

	parsed := s.parser.ParseWithCity(req.Query, city)
	params := SearchParams(parsed.Filters).Encode()

	searchURL := s.propertiesPath
	if params != "" {
		searchURL += "?" + params
	}

	took := time.Since(startTime).Milliseconds()

	s.log.DebugContext(ctx, "Query parsed",
		"query", req.Query,
		"keys", parsed.ExtractedFeatures,
		"confidence", parsed.Confidence,
	)

	return &model.ParseResponse{
		ParsedQuery:  parsed,
		SearchParams: params,
		SearchURL:    searchURL,
		Took:         took,
	}, nil
}

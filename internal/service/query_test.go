package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propquery/internal/apperr"
	"propquery/internal/logger"
	"propquery/internal/model"
	"propquery/internal/queryparser"
)

func newTestService(opts ...QueryServiceOption) *QueryService {
	return NewQueryService(queryparser.New(), logger.Discard(), opts...)
}

func TestQueryService_Parse(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Parse(context.Background(), &model.ParseRequest{
		Query: "4 bedroom house near school under 500k with garage and finished basement",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ParsedQuery)
	assert.Equal(t, queryparser.MethodRuleBased, resp.Method)
	assert.Equal(t, 0.95, resp.Confidence)

	values, err := url.ParseQuery(resp.SearchParams)
	require.NoError(t, err)
	assert.Equal(t, "4", values.Get("bedsExact"))
	assert.Equal(t, "house", values.Get("type"))
	assert.Equal(t, "500000", values.Get("maxPrice"))
	assert.Equal(t, "school", values.Get("near"))
	assert.Equal(t, "finished", values.Get("basement"))
	assert.Equal(t, []string{"garage"}, values["features"])
	assert.Equal(t, "/api/properties?"+resp.SearchParams, resp.SearchURL)
}

func TestQueryService_ParseInvalid(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name string
		req  *model.ParseRequest
	}{
		{name: "nil request", req: nil},
		{name: "empty query", req: &model.ParseRequest{}},
		{name: "blank query", req: &model.ParseRequest{Query: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Parse(context.Background(), tt.req)
			assert.Nil(t, resp)
			assert.True(t, apperr.IsInvalidArgument(err))
		})
	}
}

func TestQueryService_ParseNoMatch(t *testing.T) {
	resp, err := newTestService(WithPropertiesPath("/v2/listings")).Parse(context.Background(), &model.ParseRequest{Query: "hello world"})
	require.NoError(t, err)

	assert.Equal(t, 0.1, resp.Confidence)
	assert.Empty(t, resp.ExtractedFeatures)
	assert.Equal(t, "", resp.SearchParams)
	assert.Equal(t, "/v2/listings", resp.SearchURL)
}

func TestQueryService_CityHint(t *testing.T) {
	svc := newTestService(WithDefaultCity("Halifax"))

	resp, err := svc.Parse(context.Background(), &model.ParseRequest{Query: "3 bed condo"})
	require.NoError(t, err)
	require.NotNil(t, resp.Filters.Location)
	assert.Equal(t, "Halifax", *resp.Filters.Location)

	resp, err = svc.Parse(context.Background(), &model.ParseRequest{Query: "3 bed condo", City: "Moncton"})
	require.NoError(t, err)
	require.NotNil(t, resp.Filters.Location)
	assert.Equal(t, "Moncton", *resp.Filters.Location)
}

func TestSearchParams(t *testing.T) {
	parser := queryparser.New()

	tests := []struct {
		name  string
		query string
		want  url.Values
	}{
		{
			name:  "beds renamed",
			query: "3 bed condo",
			want:  url.Values{"bedsExact": {"3"}, "type": {"condo"}},
		},
		{
			name:  "garage spaces become a feature",
			query: "double garage with pool and fireplace",
			want:  url.Values{"features": {"garage", "fireplace", "pool"}},
		},
		{
			name:  "lists joined with commas",
			query: "near school and close to the park",
			want:  url.Values{"near": {"school,park"}},
		},
		{
			name:  "bare basement",
			query: "2.5 bath with basement",
			want:  url.Values{"baths": {"2.5"}, "basement": {"true"}},
		},
		{
			name:  "pass through",
			query: "half acre split-level built after 1990 in good condition",
			want: url.Values{
				"lotSizeAcres": {"0.5"},
				"splitLevel":   {"true"},
				"minYearBuilt": {"1990"},
				"condition":    {"good"},
			},
		},
		{
			name:  "nothing",
			query: "hello world",
			want:  url.Values{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchParams(parser.Parse(tt.query).Filters)
			assert.Equal(t, tt.want, got)
		})
	}
}

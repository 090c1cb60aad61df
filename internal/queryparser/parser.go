// Package queryparser turns a free-text real-estate search phrase into the
// structured filters understood by the properties search API.
//
// Extraction is rule based. Categories run in a fixed order; inside a
// category the rules are tried in order and the first one that fires wins.
// Proximity landmarks and amenity features are the exceptions: every match
// is collected.
package queryparser

import (
	"regexp"
	"strings"
	"time"
)

// Parser extracts Filters from search phrases. A Parser only holds
// immutable rule tables and is safe for concurrent use.
type Parser struct {
	now   func() time.Time
	steps []step
}

// Option configures a Parser
type Option func(*Parser)

// WithClock sets the clock used for relative rules such as
// "new construction". Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// New creates a parser with the default rule tables
func New(opts ...Option) *Parser {
	p := &Parser{
		now: time.Now,
		steps: []step{
			bedroomRules,
			bathroomRules,
			garageRules,
			basementRules,
			typeRules,
			priceRules,
			proximityRule,
			featureRules,
			sizeRules,
			lotSizeRules,
			storyRules,
			ageRules,
			conditionRules,
			zoningRules,
			locationRules,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse parses query with the default parser
func Parse(query string) *ParsedQuery {
	return defaultParser.Parse(query)
}

// Parse extracts filters from query. It never fails: text that matches no
// rule yields empty filters and the minimum confidence.
func (p *Parser) Parse(query string) *ParsedQuery {
	return p.ParseWithCity(query, "")
}

// ParseWithCity is Parse with a city hint that becomes the location filter
// when the phrase itself names no location.
func (p *Parser) ParseWithCity(query, city string) *ParsedQuery {
	e := &extraction{
		raw:   query,
		lower: strings.ToLower(query),
		now:   p.now(),
	}

	for _, s := range p.steps {
		s.run(e)
	}

	if city = strings.TrimSpace(city); city != "" && e.Location == nil {
		e.Location = stringPtr(city)
	}

	keys := e.Filters.Keys()
	return &ParsedQuery{
		Filters:           e.Filters,
		Confidence:        Confidence(len(keys)),
		Method:            MethodRuleBased,
		ExtractedFeatures: keys,
		OriginalQuery:     query,
	}
}

// extraction is the working state of a single Parse call.
type extraction struct {
	Filters
	raw   string
	lower string
	now   time.Time
}

type step interface {
	run(e *extraction)
}

// rule is one (pattern, effect) pair. apply reports whether it set a filter;
// a false return lets the category fall through to its next rule.
type rule struct {
	pattern *regexp.Regexp
	// notBefore rejects a match when the text right after it matches.
	notBefore *regexp.Regexp
	// raw matches against the original casing instead of the lower-cased text.
	raw   bool
	apply func(e *extraction, m []string) bool
}

// fire applies the rule to its first acceptable match
func (r rule) fire(e *extraction) bool {
	text := e.lower
	if r.raw {
		text = e.raw
	}
	for _, loc := range r.pattern.FindAllStringSubmatchIndex(text, -1) {
		if r.notBefore != nil && r.notBefore.MatchString(text[loc[1]:]) {
			continue
		}
		if r.apply(e, submatches(text, loc)) {
			return true
		}
	}
	return false
}

func submatches(text string, loc []int) []string {
	m := make([]string, len(loc)/2)
	for i := range m {
		if loc[2*i] >= 0 {
			m[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return m
}

// category is a first-match-wins rule list
type category struct {
	name  string
	rules []rule
}

func (c category) run(e *extraction) {
	for _, r := range c.rules {
		if r.fire(e) {
			return
		}
	}
}

// landmarkRule collects every proximity landmark, in order, without dedup.
type landmarkRule struct {
	pattern *regexp.Regexp
}

func (l landmarkRule) run(e *extraction) {
	for _, m := range l.pattern.FindAllStringSubmatch(e.lower, -1) {
		e.Near = append(e.Near, m[1])
	}
}

// featureRule marks one amenity flag
type featureRule struct {
	pattern *regexp.Regexp
	name    string
}

// featureTable evaluates every feature rule independently and merges the
// hits into one map. It never stops early.
type featureTable []featureRule

func (t featureTable) run(e *extraction) {
	for _, fr := range t {
		if !fr.pattern.MatchString(e.lower) {
			continue
		}
		if e.Features == nil {
			e.Features = make(map[string]bool)
		}
		e.Features[fr.name] = true
	}
}

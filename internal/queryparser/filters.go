package queryparser

import (
	"encoding/json"
	"fmt"
)

// MethodRuleBased tags results produced by the regex rule table.
const MethodRuleBased = "rule-based"

// Filter keys understood by the properties search API.
const (
	KeyBeds         = "beds"
	KeyBaths        = "baths"
	KeyGarageSpaces = "garageSpaces"
	KeyGarage       = "garage"
	KeyBasement     = "basement"
	KeyType         = "type"
	KeyMaxPrice     = "maxPrice"
	KeyNear         = "near"
	KeyFeatures     = "features"
	KeyMinSqft      = "minSqft"
	KeyMaxSqft      = "maxSqft"
	KeyLotSizeAcres = "lotSizeAcres"
	KeyLotSizeSqFt  = "lotSizeSqFt"
	KeyLargeLot     = "largeLot"
	KeySmallLot     = "smallLot"
	KeyStories      = "stories"
	KeyMultiLevel   = "multiLevel"
	KeySplitLevel   = "splitLevel"
	KeyMinYearBuilt = "minYearBuilt"
	KeyCondition    = "condition"
	KeyZoning       = "zoning"
	KeyLocation     = "location"
)

// Basement describes the basement requirement of a query. The zero value is
// not valid; BasementAny is encoded as JSON true.
type Basement string

const (
	BasementFinished Basement = "finished"
	BasementWalkout  Basement = "walkout"
	BasementAny      Basement = "any"
)

// MarshalJSON implements json.Marshaler
func (b Basement) MarshalJSON() ([]byte, error) {
	if b == BasementAny {
		return []byte("true"), nil
	}
	return json.Marshal(string(b))
}

// UnmarshalJSON implements json.Unmarshaler
func (b *Basement) UnmarshalJSON(data []byte) error {
	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		if !flag {
			return fmt.Errorf("basement: false is not a valid value")
		}
		*b = BasementAny
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("basement: %w", err)
	}
	*b = Basement(s)
	return nil
}

// String returns the query-string form of the basement filter
func (b Basement) String() string {
	if b == BasementAny {
		return "true"
	}
	return string(b)
}

// Filters holds the structured filters extracted from a search phrase.
// Nil fields were not mentioned in the query.
type Filters struct {
	Beds         *int            `json:"beds,omitempty"`
	Baths        *float64        `json:"baths,omitempty"`
	GarageSpaces *int            `json:"garageSpaces,omitempty"`
	Garage       *bool           `json:"garage,omitempty"`
	Basement     *Basement       `json:"basement,omitempty"`
	Type         *string         `json:"type,omitempty"`
	MaxPrice     *int            `json:"maxPrice,omitempty"`
	Near         []string        `json:"near,omitempty"`
	Features     map[string]bool `json:"features,omitempty"`
	MinSqft      *int            `json:"minSqft,omitempty"`
	MaxSqft      *int            `json:"maxSqft,omitempty"`
	LotSizeAcres *float64        `json:"lotSizeAcres,omitempty"`
	LotSizeSqFt  *int            `json:"lotSizeSqFt,omitempty"`
	LargeLot     *bool           `json:"largeLot,omitempty"`
	SmallLot     *bool           `json:"smallLot,omitempty"`
	Stories      *int            `json:"stories,omitempty"`
	MultiLevel   *bool           `json:"multiLevel,omitempty"`
	SplitLevel   *bool           `json:"splitLevel,omitempty"`
	MinYearBuilt *int            `json:"minYearBuilt,omitempty"`
	Condition    *string         `json:"condition,omitempty"`
	Zoning       *string         `json:"zoning,omitempty"`
	Location     *string         `json:"location,omitempty"`
}

// Keys returns the filter keys that are set, in extraction order.
func (f Filters) Keys() []string {
	keys := []string{}
	add := func(set bool, key string) {
		if set {
			keys = append(keys, key)
		}
	}

	add(f.Beds != nil, KeyBeds)
	add(f.Baths != nil, KeyBaths)
	add(f.GarageSpaces != nil, KeyGarageSpaces)
	add(f.Garage != nil, KeyGarage)
	add(f.Basement != nil, KeyBasement)
	add(f.Type != nil, KeyType)
	add(f.MaxPrice != nil, KeyMaxPrice)
	add(len(f.Near) > 0, KeyNear)
	add(len(f.Features) > 0, KeyFeatures)
	add(f.MinSqft != nil, KeyMinSqft)
	add(f.MaxSqft != nil, KeyMaxSqft)
	add(f.LotSizeAcres != nil, KeyLotSizeAcres)
	add(f.LotSizeSqFt != nil, KeyLotSizeSqFt)
	add(f.LargeLot != nil, KeyLargeLot)
	add(f.SmallLot != nil, KeySmallLot)
	add(f.Stories != nil, KeyStories)
	add(f.MultiLevel != nil, KeyMultiLevel)
	add(f.SplitLevel != nil, KeySplitLevel)
	add(f.MinYearBuilt != nil, KeyMinYearBuilt)
	add(f.Condition != nil, KeyCondition)
	add(f.Zoning != nil, KeyZoning)
	add(f.Location != nil, KeyLocation)

	return keys
}

// IsEmpty reports whether no filter was extracted
func (f Filters) IsEmpty() bool {
	return len(f.Keys()) == 0
}

// ParsedQuery is the result of parsing one search phrase
type ParsedQuery struct {
	Filters           Filters  `json:"filters"`
	Confidence        float64  `json:"confidence"`
	Method            string   `json:"method"`
	ExtractedFeatures []string `json:"extractedFeatures"`
	OriginalQuery     string   `json:"originalQuery"`
}

// Confidence scores a parse by the number of distinct top-level filter keys.
// It is a coarse heuristic, not a calibrated probability.
func Confidence(keyCount int) float64 {
	score := 0.1 + 0.25*float64(keyCount)
	if score > 0.95 {
		return 0.95
	}
	return score
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func stringPtr(v string) *string { return &v }

func basementPtr(v Basement) *Basement { return &v }

package service

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"propquery/internal/queryparser"
)

// searchKeyRenames maps filter keys whose name differs in the properties
// search API
var searchKeyRenames = map[string]string{
	queryparser.KeyBeds: "bedsExact",
}

// SearchParams projects parsed filters onto the query-string parameters of
// the properties search API. Garage mentions and amenity flags share the
// repeated "features" parameter; lists are joined with commas.
func SearchParams(f queryparser.Filters) url.Values {
	params := url.Values{}
	set := func(key, value string) {
		if renamed, ok := searchKeyRenames[key]; ok {
			key = renamed
		}
		params.Set(key, value)
	}

	if f.Beds != nil {
		set(queryparser.KeyBeds, strconv.Itoa(*f.Beds))
	}
	if f.Baths != nil {
		set(queryparser.KeyBaths, formatFloat(*f.Baths))
	}
	if f.GarageSpaces != nil || (f.Garage != nil && *f.Garage) {
		params.Add(queryparser.KeyFeatures, "garage")
	}
	if f.Basement != nil {
		set(queryparser.KeyBasement, f.Basement.String())
	}
	if f.Type != nil {
		set(queryparser.KeyType, *f.Type)
	}
	if f.MaxPrice != nil {
		set(queryparser.KeyMaxPrice, strconv.Itoa(*f.MaxPrice))
	}
	if len(f.Near) > 0 {
		set(queryparser.KeyNear, strings.Join(f.Near, ","))
	}

	features := make([]string, 0, len(f.Features))
	for name, on := range f.Features {
		if on {
			features = append(features, name)
		}
	}
	sort.Strings(features)
	for _, name := range features {
		params.Add(queryparser.KeyFeatures, name)
	}

	setInt(set, queryparser.KeyMinSqft, f.MinSqft)
	setInt(set, queryparser.KeyMaxSqft, f.MaxSqft)
	if f.LotSizeAcres != nil {
		set(queryparser.KeyLotSizeAcres, formatFloat(*f.LotSizeAcres))
	}
	setInt(set, queryparser.KeyLotSizeSqFt, f.LotSizeSqFt)
	setBool(set, queryparser.KeyLargeLot, f.LargeLot)
	setBool(set, queryparser.KeySmallLot, f.SmallLot)
	setInt(set, queryparser.KeyStories, f.Stories)
	setBool(set, queryparser.KeyMultiLevel, f.MultiLevel)
	setBool(set, queryparser.KeySplitLevel, f.SplitLevel)
	setInt(set, queryparser.KeyMinYearBuilt, f.MinYearBuilt)
	setString(set, queryparser.KeyCondition, f.Condition)
	setString(set, queryparser.KeyZoning, f.Zoning)
	setString(set, queryparser.KeyLocation, f.Location)

	return params
}

func setInt(set func(key, value string), key string, v *int) {
	if v != nil {
		set(key, strconv.Itoa(*v))
	}
}

func setBool(set func(key, value string), key string, v *bool) {
	if v != nil {
		set(key, strconv.FormatBool(*v))
	}
}

func setString(set func(key, value string), key string, v *string) {
	if v != nil {
		set(key, *v)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package queryparser

import (
	"regexp"
	"strings"
)

var re = regexp.MustCompile

const (
	sqftUnit = `(?:sq\.?\s*ft|sqft|square\s+f(?:ee|oo)t|sf)`
	storyRef = `(?:stor(?:y|ey|ies|eys)|levels?)`
)

// constant returns an effect that always fires
func constant(set func(e *extraction)) func(*extraction, []string) bool {
	return func(e *extraction, _ []string) bool {
		set(e)
		return true
	}
}

// count returns an effect that stores the number word or digits in group 1
func count(set func(e *extraction, n int)) func(*extraction, []string) bool {
	return func(e *extraction, m []string) bool {
		n, ok := ParseNumber(m[1])
		if !ok {
			return false
		}
		set(e, n)
		return true
	}
}

var bedroomRules = category{
	name: "bedrooms",
	rules: []rule{
		{
			// the lead-in keeps the fraction of "2.5 bed" from reading as 5
			pattern: re(`(?:^|[^\d.])(\d+)\s*(?:\+|or\s+more|plus)?\s*-?\s*(?:bedrooms?|beds?|bdrms?|br)\b`),
			apply:   count(func(e *extraction, n int) { e.Beds = intPtr(n) }),
		},
		{
			pattern: re(`\b(` + numberWords + `)\s*(?:\+|or\s+more|plus)?\s*-?\s*(?:bedrooms?|beds?|bdrms?|br)\b`),
			apply:   count(func(e *extraction, n int) { e.Beds = intPtr(n) }),
		},
	},
}

var bathroomRules = category{
	name: "bathrooms",
	rules: []rule{
		{
			pattern: re(`\b(\d+|` + numberWords + `)\s+and\s+(?:a\s+)?half\s*-?\s*(?:bathrooms?|baths?)\b`),
			apply: count(func(e *extraction, n int) {
				e.Baths = floatPtr(float64(n) + 0.5)
			}),
		},
		{
			pattern: re(`\b(\d+(?:\.\d+)?)\s*(?:\+|or\s+more|plus)?\s*-?\s*(?:bathrooms?|baths?|ba)\b`),
			apply: func(e *extraction, m []string) bool {
				v, ok := parseDecimal(m[1])
				if !ok {
					return false
				}
				e.Baths = floatPtr(v)
				return true
			},
		},
		{
			pattern: re(`\b(` + numberWords + `)\s*(?:\+|or\s+more|plus)?\s*-?\s*(?:bathrooms?|baths?)\b`),
			apply: count(func(e *extraction, n int) {
				e.Baths = floatPtr(float64(n))
			}),
		},
	},
}

var garageRules = category{
	name: "garage",
	rules: []rule{
		{
			pattern: re(`\b(?:double(?:[\s-]car)?\s+(?:attached\s+|detached\s+)?garage|(?:two|2)[\s-]car)\b`),
			apply:   constant(func(e *extraction) { e.GarageSpaces = intPtr(2) }),
		},
		{
			pattern: re(`\b(?:single(?:[\s-]car)?\s+(?:attached\s+|detached\s+)?garage|(?:one|1)[\s-]car)\b`),
			apply:   constant(func(e *extraction) { e.GarageSpaces = intPtr(1) }),
		},
		{
			pattern: re(`\b([3-9]|three|four|five)[\s-]car\b`),
			apply:   count(func(e *extraction, n int) { e.GarageSpaces = intPtr(n) }),
		},
		{
			pattern: re(`\b(?:garage|parking)\b`),
			apply:   constant(func(e *extraction) { e.Garage = boolPtr(true) }),
		},
	},
}

var basementRules = category{
	name: "basement",
	rules: []rule{
		{
			pattern: re(`\b(?:finished|completed|done)\s+basement\b|\bbasement\s+(?:is\s+)?(?:finished|completed|done)\b`),
			apply:   constant(func(e *extraction) { e.Basement = basementPtr(BasementFinished) }),
		},
		{
			pattern: re(`\bwalk[\s-]?out\s+basement\b|\bbasement\s+(?:is\s+)?(?:a\s+)?walk[\s-]?out\b`),
			apply:   constant(func(e *extraction) { e.Basement = basementPtr(BasementWalkout) }),
		},
		{
			pattern: re(`\bbasement\b`),
			apply:   constant(func(e *extraction) { e.Basement = basementPtr(BasementAny) }),
		},
	},
}

// Property types.
const (
	TypeCondo     = "condo"
	TypeTownhouse = "townhouse"
	TypeDuplex    = "duplex"
	TypeHouse     = "house"
)

var typeRules = category{
	name: "type",
	rules: []rule{
		{
			pattern: re(`\b(?:condos?|condominiums?|apartments?|apt)\b`),
			apply:   constant(func(e *extraction) { e.Type = stringPtr(TypeCondo) }),
		},
		{
			pattern: re(`\b(?:town\s*houses?|town\s*homes?|row\s*houses?|row\s*homes?|rows?)\b`),
			apply:   constant(func(e *extraction) { e.Type = stringPtr(TypeTownhouse) }),
		},
		{
			pattern: re(`\b(?:duplex(?:es)?|semi[\s-]?detached)\b`),
			apply:   constant(func(e *extraction) { e.Type = stringPtr(TypeDuplex) }),
		},
		{
			pattern:   re(`\b(?:houses?|homes?|detached|single[\s-]family)\b`),
			notBefore: re(`^\s+garage\b`),
			apply:     constant(func(e *extraction) { e.Type = stringPtr(TypeHouse) }),
		},
	},
}

const priceFigure = `\$?\s*(\d[\d,]*(?:\.\d+)?)\s*(million|thousand|k|m)?\b`

// notPrice rejects figures that are counts or measurements of something else.
var notPrice = re(`^\s*(?:bed|bd|br|bath|ba\b|car|acre|sq|square|sf\b|stor|level|year|yr|min|km|mile|block|k?m\b)`)

func maxPrice(e *extraction, m []string) bool {
	price, ok := parseAmount(m[1], m[2])
	if !ok || price <= 0 {
		return false
	}
	e.MaxPrice = intPtr(price)
	return true
}

var priceRules = category{
	name: "price",
	rules: []rule{
		{
			pattern:   re(`\b(?:under|below|max(?:imum)?(?:\s+price)?|budget(?:\s+of)?|less\s+than|no\s+more\s+than|(?:price\s+)?up\s+to)\s*(?:of\s+)?` + priceFigure),
			notBefore: notPrice,
			apply:     maxPrice,
		},
		{
			pattern:   re(`\$\s*(\d[\d,]*(?:\.\d+)?)\s*(million|thousand|k|m)?\s+or\s+(?:less|under|below)\b`),
			notBefore: notPrice,
			apply:     maxPrice,
		},
	},
}

var proximityRule = landmarkRule{
	pattern: re(`\b(?:near|close\s+to|by|next\s+to|walking\s+distance\s+(?:to|of|from))\s+(?:an?\s+|the\s+)?(school|clinic|hospital|park|mall|downtown|transit)s?\b`),
}

// Feature names stored under the features filter.
var featureRules = featureTable{
	{re(`\b(?:swimming\s+)?pools?\b`), "pool"},
	{re(`\b(?:hot\s*tub|jacuzzi)s?\b`), "hotTub"},
	{re(`\bfire\s*places?\b`), "fireplace"},
	{re(`\b(?:waterfront|water\s+front|lakefront|lake\s+front|oceanfront|beachfront|riverfront)\b`), "waterfront"},
	{re(`\b(?:central\s+air|central\s+a/?c|air\s+conditioning|a/c)\b`), "centralAir"},
	{re(`\bsmart\s+home\b`), "smartHome"},
	{re(`\bsolar(?:\s+panels?)?\b`), "solar"},
	{re(`\b(?:large|big|huge|spacious)\s+(?:back\s*)?yards?\b`), "largeYard"},
	{re(`\bfenced(?:[\s-]in)?(?:\s+(?:back\s*)?yards?)?\b`), "fencedYard"},
	{re(`\b(?:back\s*)?yards?\b`), "yard"},
	{re(`\bocean\s+views?\b`), "oceanView"},
	{re(`\bmountain\s+views?\b`), "mountainView"},
	{re(`\blake\s+views?\b`), "lakeView"},
	{re(`\bcity\s+views?\b`), "cityView"},
	{re(`\bgolf(?:\s+course)?\s+views?\b`), "golfView"},
	{re(`\b(?:well\s+water|drilled\s+well|dug\s+well)\b`), "wellWater"},
	{re(`\b(?:municipal|city|town)\s+water\b`), "municipalWater"},
	{re(`\bseptic(?:\s+(?:system|tank))?\b`), "septic"},
	{re(`\b(?:municipal|city|town)\s+sewers?\b`), "municipalSewer"},
	{re(`\b(?:irrigation|sprinkler\s+system)\b`), "irrigation"},
	{re(`\b(?:new\s+construction|new\s+build|newly\s+built|brand\s+new)\b`), "newConstruction"},
	{re(`\b(?:renovated|remodel(?:l)?ed|updated)\b`), "renovated"},
	{re(`\b(?:move[\s-]?in[\s-]?ready|turn[\s-]?key)\b`), "moveInReady"},
	{re(`\bcustom[\s-]?(?:built|home|house|build)\b`), "customBuilt"},
	{re(`\branch(?:[\s-]style)?\b`), "ranch"},
	{re(`\bcolonial\b`), "colonial"},
	{re(`\bbungalows?\b`), "bungalow"},
	{re(`\b(?:modern|contemporary)\b`), "modern"},
	{re(`\btraditional\b`), "traditional"},
	{re(`\b(?:rural|countryside|country\s+property)\b`), "rural"},
	{re(`\b(?:acreage|hobby\s+farm)\b`), "acreage"},
	{re(`\b(?:wheelchair(?:\s+accessible)?|accessible|handicap(?:ped)?\s+accessible|barrier[\s-]free)\b`), "accessible"},
	{re(`\b(?:no\s+stairs|main[\s-]floor\s+living|one[\s-]level\s+living|single[\s-]level\s+living)\b`), "mainFloorLiving"},
	{re(`\belevators?\b`), "elevator"},
}

// yardOrLot keeps "large lot" or "big yard" from implying a large house.
var yardOrLot = re(`^\s+(?:back\s*)?(?:lots?|yards?)\b`)

var sizeRules = category{
	name: "size",
	rules: []rule{
		{
			pattern:   re(`\b(\d[\d,]*)\s*\+?\s*` + sqftUnit + `\b`),
			notBefore: re(`^\.?\s+lot\b`),
			apply: func(e *extraction, m []string) bool {
				n, ok := parseInteger(m[1])
				if !ok {
					return false
				}
				e.MinSqft = intPtr(n)
				return true
			},
		},
		{
			pattern:   re(`\b(?:spacious|large|big|huge)\b`),
			notBefore: yardOrLot,
			apply:     constant(func(e *extraction) { e.MinSqft = intPtr(2000) }),
		},
		{
			pattern:   re(`\b(?:compact|small|cozy|cosy)\b`),
			notBefore: yardOrLot,
			apply:     constant(func(e *extraction) { e.MaxSqft = intPtr(1500) }),
		},
	},
}

var lotSizeRules = category{
	name: "lot size",
	rules: []rule{
		{
			pattern: re(`\b(\d+(?:\.\d+)?)\s*\+?\s*-?\s*acres?\b`),
			apply: func(e *extraction, m []string) bool {
				v, ok := parseDecimal(m[1])
				if !ok {
					return false
				}
				e.LotSizeAcres = floatPtr(v)
				return true
			},
		},
		{
			pattern: re(`\bhalf[\s-](?:an\s+)?acre\b`),
			apply:   constant(func(e *extraction) { e.LotSizeAcres = floatPtr(0.5) }),
		},
		{
			pattern: re(`\bquarter[\s-](?:of\s+an\s+)?acre\b`),
			apply:   constant(func(e *extraction) { e.LotSizeAcres = floatPtr(0.25) }),
		},
		{
			pattern: re(`\b(\d[\d,]*)\s*` + sqftUnit + `\.?\s+lot\b`),
			apply: func(e *extraction, m []string) bool {
				n, ok := parseInteger(m[1])
				if !ok {
					return false
				}
				e.LotSizeSqFt = intPtr(n)
				return true
			},
		},
		{
			pattern: re(`\b(?:large|big|huge|oversized)\s+lots?\b`),
			apply:   constant(func(e *extraction) { e.LargeLot = boolPtr(true) }),
		},
		{
			pattern: re(`\b(?:small|compact)\s+lots?\b`),
			apply:   constant(func(e *extraction) { e.SmallLot = boolPtr(true) }),
		},
	},
}

var storyRules = category{
	name: "stories",
	rules: []rule{
		{
			pattern: re(`\b(\d+)[\s-]*` + storyRef + `\b`),
			apply:   count(func(e *extraction, n int) { e.Stories = intPtr(n) }),
		},
		{
			pattern: re(`\b(?:single|one)[\s-]*` + storyRef + `\b`),
			apply:   constant(func(e *extraction) { e.Stories = intPtr(1) }),
		},
		{
			pattern: re(`\btwo[\s-]*` + storyRef + `\b`),
			apply:   constant(func(e *extraction) { e.Stories = intPtr(2) }),
		},
		{
			pattern: re(`\bthree[\s-]*` + storyRef + `\b`),
			apply:   constant(func(e *extraction) { e.Stories = intPtr(3) }),
		},
		{
			pattern: re(`\bfour[\s-]*` + storyRef + `\b`),
			apply:   constant(func(e *extraction) { e.Stories = intPtr(4) }),
		},
		{
			pattern: re(`\bmulti[\s-]*(?:levels?|stor(?:y|ey|ies))\b`),
			apply:   constant(func(e *extraction) { e.MultiLevel = boolPtr(true) }),
		},
		{
			pattern: re(`\bsplit[\s-]*levels?\b`),
			apply:   constant(func(e *extraction) { e.SplitLevel = boolPtr(true) }),
		},
	},
}

var ageRules = category{
	name: "age",
	rules: []rule{
		{
			pattern: re(`\b(?:built|constructed)\s+(?:after|since|in\s+or\s+after)\s+((?:18|19|20)\d{2})\b`),
			apply:   count(func(e *extraction, n int) { e.MinYearBuilt = intPtr(n) }),
		},
		{
			pattern: re(`\bnewer\s+than\s+((?:18|19|20)\d{2})\b`),
			apply:   count(func(e *extraction, n int) { e.MinYearBuilt = intPtr(n) }),
		},
		{
			pattern: re(`\b(?:new\s+construction|recently\s+built|newly\s+built|new\s+build)\b`),
			apply: constant(func(e *extraction) {
				e.MinYearBuilt = intPtr(e.now.Year() - 5)
			}),
		},
	},
}

// Condition values.
const (
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionNeedsWork = "needs_work"
	ConditionRenovated = "renovated"
	ConditionOriginal  = "original"
)

var conditionRules = category{
	name: "condition",
	rules: []rule{
		{
			pattern: re(`\b(?:move[\s-]?in[\s-]?ready|excellent\s+condition|turn[\s-]?key)\b`),
			apply:   constant(func(e *extraction) { e.Condition = stringPtr(ConditionExcellent) }),
		},
		{
			pattern: re(`\bgood\s+condition\b`),
			apply:   constant(func(e *extraction) { e.Condition = stringPtr(ConditionGood) }),
		},
		{
			pattern: re(`\b(?:needs?\s+(?:some\s+)?work|fixer[\s-]?uppers?|handyman\s+special)\b`),
			apply:   constant(func(e *extraction) { e.Condition = stringPtr(ConditionNeedsWork) }),
		},
		{
			pattern: re(`\b(?:renovated|updated|remodel(?:l)?ed)\b`),
			apply:   constant(func(e *extraction) { e.Condition = stringPtr(ConditionRenovated) }),
		},
		{
			pattern: re(`\boriginal\s+condition\b`),
			apply:   constant(func(e *extraction) { e.Condition = stringPtr(ConditionOriginal) }),
		},
	},
}

// Zoning values.
const (
	ZoningRuralResidential = "rural_residential"
	ZoningAgricultural     = "agricultural"
	ZoningMixedUse         = "mixed_use"
	ZoningResidential      = "residential"
)

var zoningRules = category{
	name: "zoning",
	rules: []rule{
		{
			pattern: re(`\brural\s+residential\b`),
			apply:   constant(func(e *extraction) { e.Zoning = stringPtr(ZoningRuralResidential) }),
		},
		{
			pattern: re(`\b(?:agricultural(?:ly)?\s+(?:zon(?:ing|ed)|land)|zoned\s+agricultur(?:al|e))\b`),
			apply:   constant(func(e *extraction) { e.Zoning = stringPtr(ZoningAgricultural) }),
		},
		{
			pattern: re(`\bmixed[\s-]use\b`),
			apply:   constant(func(e *extraction) { e.Zoning = stringPtr(ZoningMixedUse) }),
		},
		{
			pattern: re(`\b(?:residential\s+zon(?:ing|ed)|zoned\s+residential)\b`),
			apply:   constant(func(e *extraction) { e.Zoning = stringPtr(ZoningResidential) }),
		},
	},
}

func location(e *extraction, m []string) bool {
	place := strings.TrimRight(strings.TrimSpace(m[1]), ".,;:!?")
	if place == "" {
		return false
	}
	e.Location = stringPtr(place)
	return true
}

// placeWord is one capitalised word of a place name, accents included.
const placeWord = `\p{Lu}[\p{L}\p{M}\d_'.-]*`

// locationRules are the lowest priority and deliberately permissive.
var locationRules = category{
	name: "location",
	rules: []rule{
		{
			pattern: re(`\b(?:[Ii]n|[Aa]t)\s+(` + placeWord + `(?:\s+` + placeWord + `)*)`),
			raw:     true,
			apply:   location,
		},
		{
			pattern: re(`\b(?:in|at)\s+(downtown|uptown|(?:the\s+)?suburbs|city\s+cent(?:er|re))\b`),
			apply:   location,
		},
	},
}

package queryparser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberWords is the alternation used inside count patterns.
const numberWords = `one|two|three|four|five|six|seven|eight|nine|ten`

var wordNumbers = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
	"ten":   10,
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// ParseNumber converts "one".."ten" or a plain decimal integer.
// Anything else is reported as no match.
func ParseNumber(token string) (int, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if n, ok := wordNumbers[token]; ok {
		return n, true
	}
	if !digitsOnly.MatchString(token) {
		return 0, false
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseAmount reads a price figure such as "500", "1,250,000" or "1.2"
// together with its suffix. Suffixes only scale figures below 10,000 so
// "500000k" is not multiplied twice.
func parseAmount(figure, suffix string) (int, bool) {
	v, ok := parseDecimal(figure)
	if !ok {
		return 0, false
	}
	if v < 10000 {
		switch suffix {
		case "k", "thousand":
			v *= 1000
		case "m", "million":
			v *= 1000000
		}
	}
	v = math.Round(v)
	if v >= float64(math.MaxInt) {
		return 0, false
	}
	return int(v), true
}

func parseDecimal(figure string) (float64, bool) {
	figure = strings.ReplaceAll(figure, ",", "")
	if figure == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(figure, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseInteger(figure string) (int, bool) {
	return ParseNumber(strings.ReplaceAll(figure, ",", ""))
}

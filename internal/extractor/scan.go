package extractor

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// BasicService is the inclusion tag used when no dietary term is found.
const BasicService = "Basic Service"

type term struct {
	match string
	tag   string
}

var dietaryTerms = []term{
	{"vegetarian", "Vegetarian"},
	{"gluten-free", "Gluten-free"},
	{"kosher", "Kosher"},
}

var actionPhrases = []string{
	"will call back",
	"send email",
	"follow up",
	"get back to you",
	"check availability",
	"confirm details",
	"provide quote",
}

var currencyPattern = regexp.MustCompile(`\$(\d+(?:,\d+)*)`)

// ParseAmount returns the first dollar amount in text with grouping commas
// removed. Cents after the digit groups are ignored. Amounts too large for a
// float64 are clamped to math.MaxFloat64 so they stay JSON encodable.
func ParseAmount(text string) (float64, bool) {
	m := currencyPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxFloat64, true
	}
	if err != nil {
		return 0, false
	}
	return amount, true
}

// DietaryTags returns the dietary terms present in text, in vocabulary order.
func DietaryTags(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, t := range dietaryTerms {
		if strings.Contains(lower, t.match) {
			tags = append(tags, t.tag)
		}
	}
	return tags
}

// NextSteps returns the follow-up phrases mentioned in text, in a fixed order.
func NextSteps(text string) []string {
	lower := strings.ToLower(text)
	steps := []string{}
	for _, p := range actionPhrases {
		if strings.Contains(lower, p) {
			steps = append(steps, p)
		}
	}
	return steps
}

package extractor

import (
	"strings"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
)

// Rule maps a keyword set to the vendor type it implies.
type Rule struct {
	Keywords []string
	Type     models.VendorType
}

// DefaultRules is evaluated top to bottom; catering outranks decor.
var DefaultRules = []Rule{
	{Keywords: []string{"catering", "food", "vegetarian"}, Type: models.VendorCaterer},
	{Keywords: []string{"decor", "floral"}, Type: models.VendorDecorator},
}

// Classifier picks a vendor type from free text using an ordered rule table.
// The first rule with any keyword present wins; Fallback is used otherwise.
type Classifier struct {
	Rules    []Rule
	Fallback models.VendorType
}

func NewClassifier() *Classifier {
	return &Classifier{Rules: DefaultRules, Fallback: models.VendorVenue}
}

func (c *Classifier) Classify(text string) models.VendorType {
	lower := strings.ToLower(text)
	for _, r := range c.Rules {
		if containsAny(lower, r.Keywords...) {
			return r.Type
		}
	}
	return c.Fallback
}

// containsAny checks if the text contains any of the given keywords
func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

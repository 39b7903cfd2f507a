package extractor

import (
	"math"
	"strings"
	"testing"

	"github.com/Eursukkul/vendor-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		want models.VendorType
	}{
		{"catering keyword", "Full CATERING package", models.VendorCaterer},
		{"food keyword", "food trucks available", models.VendorCaterer},
		{"vegetarian keyword", "vegetarian menu only", models.VendorCaterer},
		{"decor keyword", "Decor and lighting", models.VendorDecorator},
		{"floral keyword", "floral arches", models.VendorDecorator},
		{"catering outranks decor", "floral decor plus catering", models.VendorCaterer},
		{"no keyword falls back", "ballroom for 200", models.VendorVenue},
		{"empty text falls back", "", models.VendorVenue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestClassify_RuleOrderMatters(t *testing.T) {
	c := &Classifier{
		Rules: []Rule{
			{Keywords: []string{"decor"}, Type: models.VendorDecorator},
			{Keywords: []string{"catering"}, Type: models.VendorCaterer},
		},
		Fallback: models.VendorVenue,
	}

	assert.Equal(t, models.VendorDecorator, c.Classify("decor and catering"))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   float64
		wantOK bool
	}{
		{"plain", "$5000", 5000, true},
		{"grouped", "total $12,500 due", 12500, true},
		{"multiple groups", "$1,234,567", 1234567, true},
		{"cents ignored", "$99.95 per head", 99, true},
		{"first match", "$10 or $20", 10, true},
		{"dollar without digits", "costs $ a lot", 0, false},
		{"no dollar", "5000 USD", 0, false},
		{"overflow clamped", "$" + strings.Repeat("9", 400), math.MaxFloat64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDietaryTags(t *testing.T) {
	assert.Nil(t, DietaryTags("steak dinner"))
	assert.Equal(t, []string{"Vegetarian", "Gluten-free", "Kosher"}, DietaryTags("KOSHER, Gluten-Free and vegetarian"))
}

func TestNextSteps(t *testing.T) {
	assert.Empty(t, NextSteps("nothing to do"))
	assert.Equal(t,
		[]string{"send email", "follow up", "provide quote"},
		NextSteps("They will provide quote tomorrow; we should follow up and Send Email with headcount"),
	)
}

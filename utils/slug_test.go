package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple name", input: "Rose Gold Edition", expected: "rose-gold-edition"},
		{name: "accents stripped", input: "Café Brûlée", expected: "cafe-brulee"},
		{name: "special characters", input: "Silver & Pearl!", expected: "silver-pearl"},
		{name: "leading and trailing whitespace", input: "  Moonstone Ring  ", expected: "moonstone-ring"},
		{name: "consecutive separators", input: "Art --- Deco", expected: "art-deco"},
		{name: "numbers kept", input: "Edition No 7", expected: "edition-no-7"},
		{name: "already a slug", input: "plain-slug", expected: "plain-slug"},
		{name: "only special characters", input: "!!!", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlugCharset(t *testing.T) {
	t.Parallel()

	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	inputs := []string{
		"Rose Gold Edition",
		"L'Étoile du Nord",
		"  100% Sterling — Silver  ",
		"ØRNSTED smykker",
		"åäö ÅÄÖ",
	}

	for _, in := range inputs {
		slug := GenerateSlug(in)
		if slug == "" {
			continue
		}
		assert.Regexp(t, valid, slug, "input %q", in)
	}
}

package mvk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected Version
	}{
		{"release", "1.3.231.0", Version{1, 3, 231, 0}},
		{"short", "1.2", Version{1, 2}},
		{"non-numeric directory", "beta", Version{0}},
		{"mixed segments", "1.beta.0", Version{1, 0, 0}},
		{"empty", "", Version{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseVersion(tt.in))
		})
	}
}

func TestVersionOrdering(t *testing.T) {
	newest := ParseVersion("1.3.231.0")
	older := ParseVersion("1.3.200.0")
	oldest := ParseVersion("1.2.0.0")

	assert.Equal(t, 1, newest.Compare(older))
	assert.Equal(t, 1, older.Compare(oldest))
	assert.Equal(t, 1, newest.Compare(oldest))
	assert.Equal(t, -1, oldest.Compare(newest))
	assert.Equal(t, 0, newest.Compare(ParseVersion("1.3.231.0")))

	assert.True(t, older.Less(newest))
	assert.True(t, newest.AtLeast(newest))
	assert.False(t, oldest.AtLeast(older))
}

func TestVersionPrefixIsSmaller(t *testing.T) {
	assert.Equal(t, -1, ParseVersion("1.3").Compare(ParseVersion("1.3.0")))
	assert.Equal(t, 1, ParseVersion("1.3.0").Compare(ParseVersion("1.3")))
}

func TestNonNumericRejectedAgainstMinimum(t *testing.T) {
	min := ParseVersion("1.3.231.0")
	assert.False(t, ParseVersion("beta").AtLeast(min))
}

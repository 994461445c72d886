package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndStripsPunctuation(t *testing.T) {
	assert.Equal(t, "senior go engineer 5 years", Normalize("Senior Go-Engineer, 5+ years!"))
}

func TestNormalize_CollapsesWhitespaceRuns(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("  a \t b \n\n c  "))
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize("!!!???"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"C++ & C# (2019–2021)",
		"  MIXED Case\twith\nnewlines  ",
		"résumé with accented çhars",
		"123-456-7890",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", in)
	}
}

func TestNormalize_NonASCIIBecomesSeparator(t *testing.T) {
	// Accented characters are outside [a-z0-9] and collapse to spaces.
	assert.Equal(t, "r sum", Normalize("résumé"))
}

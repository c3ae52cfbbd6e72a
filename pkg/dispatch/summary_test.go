package dispatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSummary(t *testing.T) {
	tests := []struct {
		name     string
		result   string
		expected string
	}{
		{
			name:     "summary section",
			result:   "## Summary\nChecked the three endpoints, all healthy.\n\n## Details\nLong details here.",
			expected: "Checked the three endpoints, all healthy.",
		},
		{
			name:     "summary section case insensitive",
			result:   "## SUMMARY\nDone.\n\nMore text.",
			expected: "Done.",
		},
		{
			name:     "no heading falls back to first paragraph",
			result:   "First paragraph result.\n\nSecond paragraph with details.",
			expected: "First paragraph result.",
		},
		{
			name:     "single paragraph",
			result:   "Just one line.",
			expected: "Just one line.",
		},
		{
			name:     "empty",
			result:   "   ",
			expected: "",
		},
		{
			name:     "empty summary section falls back",
			result:   "## Summary\n\n## Details\nstuff",
			expected: "## Summary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractSummary(tt.result))
		})
	}
}

func TestExtractSummaryClampsLongText(t *testing.T) {
	long := strings.Repeat("x", 2*summaryMaxLen)
	got := extractSummary(long)
	assert.Len(t, got, summaryMaxLen+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

package dispatch

import "strings"

const summaryMaxLen = 500

// extractSummary pulls a short summary out of a commis result: the body of a
// "## Summary" section when present, otherwise the first paragraph.
func extractSummary(result string) string {
	result = strings.TrimSpace(result)
	if result == "" {
		return ""
	}

	if body, ok := summarySection(result); ok {
		return clamp(body)
	}

	// First paragraph fallback
	if idx := strings.Index(result, "\n\n"); idx > 0 {
		return clamp(strings.TrimSpace(result[:idx]))
	}
	return clamp(result)
}

// summarySection returns the text between a "## Summary" heading and the
// next heading (or end of text).
func summarySection(result string) (string, bool) {
	lines := strings.Split(result, "\n")
	start := -1
	for i, line := range lines {
		heading := strings.TrimSpace(strings.TrimLeft(line, "#"))
		if strings.HasPrefix(line, "#") && strings.EqualFold(heading, "summary") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return "", false
	}

	var body []string
	for _, line := range lines[start:] {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			break
		}
		body = append(body, line)
	}
	text := strings.TrimSpace(strings.Join(body, "\n"))
	if text == "" {
		return "", false
	}
	return text, true
}

func clamp(s string) string {
	if len(s) <= summaryMaxLen {
		return s
	}
	return s[:summaryMaxLen] + "..."
}

package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// formatAmount renders a dollar amount with thousands separators and no
// decimal places, e.g. 394328000000 -> "394,328,000,000".
func formatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := fmt.Sprintf("%.0f", v)
	var sb strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}

	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}

// formatPercent renders a ratio as a percentage with one decimal place,
// e.g. 0.2377 -> "23.8%".
func formatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

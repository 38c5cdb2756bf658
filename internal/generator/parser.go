package generator

import (
	"encoding/json"
	"regexp"
	"strings"

	"prodcopy-utils/pkg/models"
)

var (
	numberedBullet = regexp.MustCompile(`^\d+[.)]\s*`)
	tableRuler     = regexp.MustCompile(`^[\s\-|]+$`)
)

// ParseBullets extracts bullet lines from model output. Lines starting
// with •, -, * or a number marker count; the marker is stripped. Returns
// nil when no bullets are found so callers can fall back to defaults.
func ParseBullets(text string, max int) []string {
	var bullets []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var item string
		switch {
		case strings.HasPrefix(line, "•"):
			item = strings.TrimPrefix(line, "•")
		case strings.HasPrefix(line, "- "):
			item = strings.TrimPrefix(line, "- ")
		case strings.HasPrefix(line, "* "):
			item = strings.TrimPrefix(line, "* ")
		case numberedBullet.MatchString(line):
			item = numberedBullet.ReplaceAllString(line, "")
		default:
			continue
		}

		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		bullets = append(bullets, item)
		if max > 0 && len(bullets) >= max {
			break
		}
	}

	return bullets
}

// ParseSpecTable parses a pipe-separated specification table. The
// header row ("Specification | Details") and ruler lines are skipped.
// Fewer than minRows valid rows counts as a parse failure (nil).
func ParseSpecTable(text string, minRows, maxRows int) map[string]string {
	specs := make(map[string]string)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || tableRuler.MatchString(line) {
			continue
		}
		if strings.Contains(line, "Specification") && strings.Contains(line, "Details") {
			continue
		}

		line = strings.Trim(line, "|")
		parts := strings.Split(line, "|")

		fields := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				fields = append(fields, p)
			}
		}

		if len(fields) >= 2 {
			key := fields[0]
			value := strings.Join(fields[1:], " ")
			if len(key) > 1 && len(value) > 1 {
				specs[key] = value
			}
		} else if len(fields) == 1 && strings.Contains(fields[0], ":") {
			// Colon-separated rows inside a single cell
			colonParts := strings.SplitN(fields[0], ":", 2)
			key := strings.TrimSpace(colonParts[0])
			value := strings.TrimSpace(colonParts[1])
			if key != "" && value != "" {
				specs[key] = value
			}
		}

		if maxRows > 0 && len(specs) >= maxRows {
			break
		}
	}

	if len(specs) < minRows {
		return nil
	}

	return specs
}

// ParseFAQs extracts question/answer pairs. Pairs are blank-line
// separated blocks containing a "Q:" line and an "A:" line.
func ParseFAQs(text string, max int) []models.FAQ {
	var faqs []models.FAQ

	for _, block := range strings.Split(text, "\n\n") {
		if !strings.Contains(block, "Q:") || !strings.Contains(block, "A:") {
			continue
		}

		var question, answer string
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			// Models sometimes bold the markers
			line = strings.TrimPrefix(line, "**")
			if strings.HasPrefix(line, "Q:") && question == "" {
				question = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "Q:"), "**"))
			} else if strings.HasPrefix(line, "A:") && answer == "" {
				answer = strings.TrimSpace(strings.TrimPrefix(line, "A:"))
			}
		}

		if question != "" && answer != "" {
			faqs = append(faqs, models.FAQ{Question: question, Answer: answer})
			if max > 0 && len(faqs) >= max {
				break
			}
		}
	}

	return faqs
}

// Keyword strategy category keys, fixed across all products
const (
	KeywordPrimary    = "primary_keywords"
	KeywordCommercial = "commercial_intent"
	KeywordLongTail   = "long_tail"
	KeywordSemantic   = "semantic"
	KeywordIndustry   = "industry_specific"
)

// keywordHeadings maps section-heading markers to category keys
var keywordHeadings = []struct {
	marker string
	key    string
}{
	{"PRIMARY", KeywordPrimary},
	{"COMMERCIAL", KeywordCommercial},
	{"LONG-TAIL", KeywordLongTail},
	{"SEMANTIC", KeywordSemantic},
	{"INDUSTRY", KeywordIndustry},
}

// ParseKeywordStrategy parses blank-line separated keyword sections.
// Each section is matched to a category by its heading; keyword lines
// keep only the text before any pipe character. All five categories are
// always present in the result; nil is returned when nothing parsed.
func ParseKeywordStrategy(text string) map[string][]string {
	keywords := map[string][]string{
		KeywordPrimary:    {},
		KeywordCommercial: {},
		KeywordLongTail:   {},
		KeywordSemantic:   {},
		KeywordIndustry:   {},
	}

	total := 0
	for _, section := range strings.Split(text, "\n\n") {
		upper := strings.ToUpper(section)

		var key string
		for _, h := range keywordHeadings {
			if strings.Contains(upper, h.marker) {
				key = h.key
				break
			}
		}
		if key == "" {
			continue
		}

		for _, line := range strings.Split(section, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.Contains(strings.ToUpper(line), "KEYWORDS") {
				continue
			}
			line = strings.TrimSpace(strings.SplitN(line, "|", 2)[0])
			line = strings.TrimPrefix(line, "- ")
			line = strings.TrimPrefix(line, "• ")
			if line == "" {
				continue
			}
			keywords[key] = append(keywords[key], line)
			total++
		}
	}

	if total == 0 {
		return nil
	}

	return keywords
}

// ParseStructuredData strictly unmarshals model output as JSON. Any
// parse failure discards the output; the deterministic builder wins.
func ParseStructuredData(text string) map[string]interface{} {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &data); err != nil {
		return nil
	}
	return data
}

package domain

import (
	"encoding/json"
	"strings"
)

// BenefitList accepts either a JSON array of strings or a single delimited
// string (newline, semicolon or comma separated). Any other shape decodes to
// an empty list; decoding never fails.
type BenefitList []string

func (b *BenefitList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*b = items
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*b = splitBenefits(joined)
		return nil
	}

	*b = nil
	return nil
}

// Top3 returns the first three benefits, in original order.
func (b BenefitList) Top3() []string {
	if len(b) > 3 {
		return b[:3]
	}
	return b
}

func splitBenefits(joined string) []string {
	parts := strings.FieldsFunc(joined, func(r rune) bool {
		return r == '\n' || r == ';' || r == ','
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

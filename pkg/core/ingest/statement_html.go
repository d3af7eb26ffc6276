// Package ingest extracts raw field data from partially structured financial
// statement documents, producing the section-data maps the tagging core
// consumes.
package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseStatementHTML extracts label/value pairs from the rows of an HTML
// financial statement table. The first cell of a row is the line-item label;
// the first parseable numeric cell after it is the value. Rows without a
// numeric cell are kept as string values when the second cell has text, and
// skipped otherwise.
func ParseStatementHTML(html string) (map[string]interface{}, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	data := make(map[string]interface{})

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() < 2 {
			return
		}

		label := strings.TrimSpace(cells.First().Text())
		if label == "" {
			return
		}
		field := NormalizeLabel(label)
		if field == "" {
			return
		}
		if _, exists := data[field]; exists {
			// First occurrence wins; comparative columns repeat labels.
			return
		}

		var value interface{}
		cells.Each(func(i int, cell *goquery.Selection) {
			if i == 0 || value != nil {
				return
			}
			text := strings.TrimSpace(cell.Text())
			if num, ok := parseAmount(text); ok {
				value = num
			}
		})

		if value == nil {
			// Textual line items (e.g. currency, audit opinion).
			text := strings.TrimSpace(cells.Eq(1).Text())
			if text == "" || text == "-" || text == "—" {
				return
			}
			value = text
		}

		data[field] = value
	})

	return data, nil
}

// NormalizeLabel converts a human line-item label to the registry's field
// naming: words title-cased and concatenated, punctuation dropped.
// "Total assets" -> "TotalAssets".
func NormalizeLabel(label string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return ' '
		}
	}, label)

	var sb strings.Builder
	for _, word := range strings.Fields(clean) {
		sb.WriteString(strings.ToUpper(word[:1]))
		sb.WriteString(word[1:])
	}
	return sb.String()
}

// parseAmount parses a statement amount: commas and currency symbols
// stripped, parentheses meaning negative. Dashes are not amounts.
func parseAmount(text string) (float64, bool) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" || cleaned == "-" || cleaned == "—" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}

	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.TrimPrefix(cleaned, "S$")
	cleaned = strings.TrimSpace(cleaned)

	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		val = -val
	}
	return val, true
}

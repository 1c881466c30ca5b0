package ref

import(
	"strings"
)

// parseQuotedCSV splits delimited text where a double quote toggles quote
// state: separators and line breaks inside quotes are literal. Doubled
// quotes do not collapse into a literal quote — they just leave and
// re-enter quoted state. That matches the feed we ingest, and is not RFC
// 4180; don't "fix" it here without re-checking the feed.
func parseQuotedCSV(s string) [][]string {
	rows := [][]string{}
	row := []string{}
	var field strings.Builder
	inQuotes := false

	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRow := func() {
		if field.Len() == 0 && len(row) == 0 { return } // blank line
		endField()
		rows = append(rows, row)
		row = []string{}
	}

	for _,r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			endField()
		case r == '\n' && !inQuotes:
			endRow()
		case r == '\r' && !inQuotes:
			// swallow; the '\n' that follows ends the row
		default:
			field.WriteRune(r)
		}
	}
	endRow() // final row often has no trailing newline

	return rows
}

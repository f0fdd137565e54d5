package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/aCarinato/housewise/internal/common"
)

// parseCSV reads a CSV file and joins the cells of each record into one text
// line. Quotes exported from Windows tools often arrive as Latin-1; records
// that are not valid UTF-8 are transparently re-decoded.
func parseCSV(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnreadableFile, err)
	}

	if !utf8.Valid(data) {
		decoded, decErr := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if decErr != nil {
			return nil, fmt.Errorf("failed to decode CSV file: %w", decErr)
		}
		data = decoded
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if sep := detectSeparator(string(data)); sep != 0 {
		reader.Comma = sep
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file: %w", err)
	}

	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, strings.Join(record, " "))
	}
	return lines, nil
}

// detectSeparator sniffs the delimiter from the first line; Italian CSV
// exports use the semicolon since the comma is the decimal separator.
func detectSeparator(data string) rune {
	firstLine, _, _ := strings.Cut(data, "\n")
	if strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		return ';'
	}
	return ','
}

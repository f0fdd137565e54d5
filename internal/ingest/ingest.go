// Package ingest turns quote documents (TXT, CSV, XLSX, PDF) into the plain
// text lines consumed by the classification engine. Unlike the classifier,
// which silently skips unusable lines, this layer treats an unreadable file
// or an empty parsed-line list as fatal.
package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aCarinato/housewise/internal/common"
	"github.com/aCarinato/housewise/internal/textutil"
)

// ParseFile extracts the cleaned text lines from a quote document, picking
// the parser by file extension. It returns common.ErrUnsupportedFormat for
// unknown extensions and common.ErrEmptyDocument when no usable line
// survives cleaning.
func ParseFile(ctx context.Context, path string) ([]string, error) {
	var (
		raw []string
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		raw, err = parseText(path)
	case ".csv":
		raw, err = parseCSV(path)
	case ".xlsx":
		raw, err = parseXLSX(path)
	case ".pdf":
		raw, err = parsePDF(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	lines := cleanLines(raw)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrEmptyDocument, path)
	}

	common.LogInfo("Parsed quote document", common.Fields{
		"path":  path,
		"lines": len(lines),
	})

	return lines, nil
}

// cleanLines normalizes whitespace per line and drops lines that end up empty.
func cleanLines(raw []string) []string {
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if cleaned := textutil.NormalizeSpaces(l); cleaned != "" {
			lines = append(lines, cleaned)
		}
	}
	return lines
}

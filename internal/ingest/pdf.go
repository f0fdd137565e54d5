package ingest

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/aCarinato/housewise/internal/common"
)

// parsePDF extracts text from a PDF with the poppler pdftotext tool,
// preserving the page layout so each quote row stays on one line. Scanned
// PDFs without a text layer come back empty and surface as
// common.ErrEmptyDocument upstream; OCR is out of scope.
func parsePDF(ctx context.Context, path string) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, common.NewUserError("pdftotext is required for PDF quotes (install poppler-utils)", err)
	}

	cmd := exec.CommandContext(ctx, "pdftotext", "-layout", path, "-")
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: pdftotext: %v: %s", common.ErrUnreadableFile, err, stderr.String())
	}

	return strings.Split(out.String(), "\n"), nil
}

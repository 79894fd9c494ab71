// Package statement converts raw CSV or OFX statement content into
// normalized import candidates with signed amounts.
package statement

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fluxozen/fluxozen/internal/model"
)

// ImportedDescription is the generic description assigned to every
// candidate. Statements rarely carry a usable merchant name in a
// predictable column, so no extraction is attempted.
const ImportedDescription = "Imported Transaction"

// ErrUnsupportedFormat is returned for filenames that are neither
// .csv nor .ofx.
var ErrUnsupportedFormat = errors.New("unsupported statement format")

// ErrNoData is returned when a recognized file yields zero candidates.
// Callers must surface this rather than treat an empty import as
// success.
var ErrNoData = errors.New("no data recognized in file")

// Parse converts statement content into candidates. The filename is
// used only to select the format (case-insensitive .csv or .ofx).
func Parse(content, filename string) ([]model.Candidate, error) {
	var (
		candidates []model.Candidate
		err        error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		candidates, err = parseCSV(content)
	case ".ofx":
		candidates, err = parseOFX(content)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoData
	}
	return candidates, nil
}

package capture

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const dateLayout = "20060102"

var (
	ErrNoStem      = errors.New("capture file name has no stem")
	ErrInvalidDate = errors.New("file stem has no valid YYYYMMDD prefix")
)

// DateFromStem parses a full file stem as a YYYYMMDD calendar date.
func DateFromStem(stem string) (time.Time, error) {
	date, err := time.Parse(dateLayout, stem)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, stem)
	}
	return date, nil
}

// TradeDateFromCapture derives the trade date from a capture file named
// YYYYMMDD_*, e.g. 20190703_IEXTP1_DEEP1.0.pcap. The extension must be one
// the Source accepts.
func TradeDateFromCapture(path string) (time.Time, error) {
	ext := filepath.Ext(path)
	switch ext {
	case pcapExtension, gzipExtension:
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrWrongExtension, path)
	}

	stem := strings.TrimSuffix(filepath.Base(path), ext)
	if stem == "" {
		return time.Time{}, fmt.Errorf("%w: %q", ErrNoStem, path)
	}
	if len(stem) < len(dateLayout) {
		return time.Time{}, fmt.Errorf("%w: stem %q is shorter than a date prefix", ErrInvalidDate, stem)
	}

	return DateFromStem(stem[:len(dateLayout)])
}

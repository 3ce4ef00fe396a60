package roster

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"recipick/internal/domain"
)

// ErrUnsupportedEncoding is returned for encodings other than UTF-8 and Shift_JIS
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// NewReader wraps r with a decoder producing UTF-8 text.
// A leading UTF-8 byte order mark is removed.
func NewReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	case "shift_jis", "shift-jis", "sjis":
		return transform.NewReader(r, japanese.ShiftJIS.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, encoding)
	}
}

// Load reads and parses the candidate source at path
func Load(path, encoding string) ([]domain.Candidate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open candidate source: %w", err)
	}
	defer f.Close()

	r, err := NewReader(f, encoding)
	if err != nil {
		return nil, err
	}

	candidates, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return candidates, nil
}

package compare

import (
	"fmt"
	"os"
	"strings"

	"growth_dashboard/pkg/core/utils"
)

// CodeBook resolves country display names to ISO alpha-2 codes so comparison
// countries can be fed back into the statistics API. Immutable after load.
type CodeBook struct {
	codes map[string]string // lowercased name -> code
}

// LoadCodeBook reads the country-code override file. The file is Hjson so the
// dataset maintainers can annotate entries with comments.
func LoadCodeBook(path string) (*CodeBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read country codes: %w", err)
	}

	var raw map[string]string
	if err := utils.ParseHJSONToStruct(string(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse country codes: %w", err)
	}

	codes := make(map[string]string, len(raw))
	for name, code := range raw {
		codes[strings.ToLower(strings.TrimSpace(name))] = strings.ToUpper(strings.TrimSpace(code))
	}
	return &CodeBook{codes: codes}, nil
}

// NewCodeBook builds a code book from an in-memory mapping (tests, defaults).
func NewCodeBook(mapping map[string]string) *CodeBook {
	codes := make(map[string]string, len(mapping))
	for name, code := range mapping {
		codes[strings.ToLower(strings.TrimSpace(name))] = strings.ToUpper(strings.TrimSpace(code))
	}
	return &CodeBook{codes: codes}
}

// Code returns the ISO alpha-2 code for a country display name. Lookup is
// case-insensitive. The second return reports whether the name is known.
func (b *CodeBook) Code(name string) (string, bool) {
	if b == nil {
		return "", false
	}
	code, ok := b.codes[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// Known reports whether an ISO code appears anywhere in the book.
func (b *CodeBook) Known(code string) bool {
	if b == nil {
		return false
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range b.codes {
		if c == code {
			return true
		}
	}
	return false
}

// Len reports the number of entries.
func (b *CodeBook) Len() int {
	if b == nil {
		return 0
	}
	return len(b.codes)
}

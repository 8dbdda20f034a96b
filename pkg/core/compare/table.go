// Package compare ranks countries by per-capita GDP distance against the
// bundled dataset. The table is loaded once at startup and immutable after
// load, so concurrent readers need no synchronization.
package compare

import (
	"errors"
	"math"
	"sort"

	"growth_dashboard/pkg/models"
)

// ErrTableUnavailable marks a dataset that failed to load at startup. The
// comparator still works in that state: it returns empty result sets so the
// growth and demographic paths keep running.
var ErrTableUnavailable = errors.New("comparison table unavailable")

// Table is the read-only per-capita GDP dataset.
type Table struct {
	entries []models.CountryPerCapita
}

// NewTable builds a table from rows. The slice is copied; callers keep
// ownership of theirs.
func NewTable(rows []models.CountryPerCapita) *Table {
	entries := make([]models.CountryPerCapita, len(rows))
	copy(entries, rows)
	return &Table{entries: entries}
}

// Len reports the number of countries in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// FindClosest returns the n countries whose per-capita GDP is closest to
// target, ordered by absolute distance ascending with ties broken by country
// name ascending. An empty or nil table, or n < 1, yields an empty slice.
func (t *Table) FindClosest(target float64, n int) []models.CountryPerCapita {
	if t == nil || len(t.entries) == 0 || n < 1 {
		return []models.CountryPerCapita{}
	}

	ranked := make([]models.CountryPerCapita, len(t.entries))
	copy(ranked, t.entries)
	sort.Slice(ranked, func(i, j int) bool {
		di := math.Abs(ranked[i].PerCapitaUSD - target)
		dj := math.Abs(ranked[j].PerCapitaUSD - target)
		if di != dj {
			return di < dj
		}
		return ranked[i].Country < ranked[j].Country
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

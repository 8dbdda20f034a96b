package compare

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"growth_dashboard/pkg/models"
)

// parseUSD strips currency formatting ("$71,234.56" -> 71234.56).
func parseUSD(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty value")
	}
	return strconv.ParseFloat(cleaned, 64)
}

// LoadCSV reads the bundled dataset file. Expected header: a country-name
// column followed by a per-capita GDP column; extra columns are ignored and
// rows with missing or non-numeric values are skipped, matching how the
// source dataset drops NaN rows.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTableUnavailable, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses CSV content into a Table.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CSV header: %v", ErrTableUnavailable, err)
	}

	nameCol, valueCol := locateColumns(header)
	if nameCol < 0 || valueCol < 0 {
		return nil, fmt.Errorf("%w: CSV header %v has no country/per-capita columns", ErrTableUnavailable, header)
	}

	var rows []models.CountryPerCapita
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		if len(record) <= nameCol || len(record) <= valueCol {
			continue
		}
		name := strings.TrimSpace(record[nameCol])
		value, err := parseUSD(record[valueCol])
		if name == "" || err != nil {
			continue
		}
		rows = append(rows, models.CountryPerCapita{Country: name, PerCapitaUSD: value})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no usable rows", ErrTableUnavailable)
	}
	return NewTable(rows), nil
}

// locateColumns finds the country-name and per-capita value columns. The
// bundled file uses "country" and a long IMF column name, so we match on
// substrings rather than exact headers.
func locateColumns(header []string) (nameCol, valueCol int) {
	nameCol, valueCol = -1, -1
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		switch {
		case nameCol < 0 && strings.Contains(key, "country"):
			nameCol = i
		case valueCol < 0 && (strings.Contains(key, "percapita") || strings.Contains(key, "per_capita") || strings.Contains(key, "per capita") || strings.Contains(key, "gdppercapita")):
			valueCol = i
		}
	}
	return nameCol, valueCol
}

// ReadHTML parses an HTML page carrying a per-capita GDP table (the format the
// dataset is published in) into a Table. The first <table> whose rows yield a
// name plus a parseable dollar value is used.
func ReadHTML(r io.Reader) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse HTML: %v", ErrTableUnavailable, err)
	}

	var rows []models.CountryPerCapita
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		var candidate []models.CountryPerCapita
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			cells := tr.Find("td")
			if cells.Length() < 2 {
				return // header or spacer row
			}
			name := strings.TrimSpace(cells.Eq(0).Text())
			value, err := parseUSD(cells.Eq(1).Text())
			if name == "" || err != nil {
				return
			}
			candidate = append(candidate, models.CountryPerCapita{Country: name, PerCapitaUSD: value})
		})
		if len(candidate) > 0 {
			rows = candidate
			return false // stop at the first usable table
		}
		return true
	})

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no usable table in HTML", ErrTableUnavailable)
	}
	return NewTable(rows), nil
}

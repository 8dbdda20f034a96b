package compare

import (
	"errors"
	"strings"
	"testing"
)

const sampleCSV = `country,GDPPerCapita_GDPPerCapitaViaIMF_usd_2025,region
Luxembourg,"$140,941",Europe
India,"$2,940",Asia
Vietnam,"$4,717",Asia
NoValueLand,,Nowhere
BadValueLand,abc,Nowhere
`

const sampleHTML = `<html><body>
<table>
  <tr><th>Country</th><th>GDP per Capita</th></tr>
  <tr><td>Luxembourg</td><td>$140,941</td></tr>
  <tr><td>India</td><td>$2,940</td></tr>
  <tr><td>Vietnam</td><td>$4,717</td></tr>
  <tr><td>NoValueLand</td><td>n/a</td></tr>
</table>
</body></html>`

func TestReadCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	// Rows with missing or non-numeric values are dropped.
	if table.Len() != 3 {
		t.Fatalf("got %d rows, want 3", table.Len())
	}
	got := table.FindClosest(2940, 1)
	if got[0].Country != "India" || got[0].PerCapitaUSD != 2940 {
		t.Errorf("India row parsed wrong: %+v", got[0])
	}
}

func TestReadCSVRejectsUnusableContent(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("a,b\n1,2\n")); !errors.Is(err, ErrTableUnavailable) {
		t.Errorf("missing columns: got %v, want ErrTableUnavailable", err)
	}
	if _, err := ReadCSV(strings.NewReader("")); !errors.Is(err, ErrTableUnavailable) {
		t.Errorf("empty input: got %v, want ErrTableUnavailable", err)
	}
}

func TestReadHTMLMatchesCSV(t *testing.T) {
	fromHTML, err := ReadHTML(strings.NewReader(sampleHTML))
	if err != nil {
		t.Fatalf("ReadHTML: %v", err)
	}
	fromCSV, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if fromHTML.Len() != fromCSV.Len() {
		t.Fatalf("HTML table has %d rows, CSV has %d", fromHTML.Len(), fromCSV.Len())
	}
	for i := 0; i < fromHTML.Len(); i++ {
		h := fromHTML.FindClosest(0, fromHTML.Len())[i]
		c := fromCSV.FindClosest(0, fromCSV.Len())[i]
		if h != c {
			t.Errorf("row %d differs: HTML %+v vs CSV %+v", i, h, c)
		}
	}
}

func TestReadHTMLNoTable(t *testing.T) {
	if _, err := ReadHTML(strings.NewReader("<html><body><p>nothing</p></body></html>")); !errors.Is(err, ErrTableUnavailable) {
		t.Errorf("got %v, want ErrTableUnavailable", err)
	}
}

func TestCodeBookLookup(t *testing.T) {
	book := NewCodeBook(map[string]string{
		"India":         "IN",
		"United States": "US",
		"Vietnam":       "vn",
	})

	code, ok := book.Code("india")
	if !ok || code != "IN" {
		t.Errorf("Code(india) = %q, %v", code, ok)
	}
	code, ok = book.Code("Vietnam")
	if !ok || code != "VN" {
		t.Errorf("codes are normalized to upper case: got %q", code)
	}
	if _, ok := book.Code("Atlantis"); ok {
		t.Error("unknown country resolved")
	}
	if !book.Known("us") {
		t.Error("Known(us) = false, want true")
	}
	if book.Known("XX") {
		t.Error("Known(XX) = true, want false")
	}
}

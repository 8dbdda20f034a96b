// Package report renders a computed growth scenario as a Markdown summary and
// converts it to HTML for the dashboard's summary view.
package report

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"growth_dashboard/pkg/models"
)

// BuildMarkdown formats a growth report as a Markdown document.
func BuildMarkdown(r *models.GrowthReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Required GDP Growth: %s to %d\n\n", r.Snapshot.CountryCode, r.Request.TargetYear)

	fmt.Fprintf(&b, "**Scenario:** $%.2fB today to $%.2fB by %d (%d years).\n\n",
		r.Request.CurrentGDPBillion, r.Request.TargetGDPBillion, r.Request.TargetYear, r.Growth.YearsToTarget)

	verdict := "short of"
	if r.Growth.MeetsCurrentRate {
		verdict = "on track at"
	}
	fmt.Fprintf(&b, "## Growth\n\n")
	fmt.Fprintf(&b, "- Required annual growth: **%.2f%%**\n", r.Growth.RequiredAnnualGrowthPct)
	fmt.Fprintf(&b, "- Latest observed growth (%d): %.2f%%, currently %s the required pace\n\n",
		r.Growth.GrowthRateYear, r.Growth.LatestGrowthRatePct, verdict)

	d := r.Demographics
	fmt.Fprintf(&b, "## Demographics\n\n")
	fmt.Fprintf(&b, "- Projected population (%d): %s\n", r.Request.TargetYear, formatPopulation(d.ProjectedPopulation))
	fmt.Fprintf(&b, "- Median age: %.1f today, %.1f projected (%s, %s dependency)\n\n",
		d.CurrentMedianAgeEstimate, d.ProjectedMedianAgeEstimate, d.ProjectedAgeCategory, d.DependencyLevel)

	p := r.PerCapita
	fmt.Fprintf(&b, "## Per-capita GDP\n\n")
	fmt.Fprintf(&b, "- Current: $%.2f\n", p.CurrentPerCapitaUSD)
	fmt.Fprintf(&b, "- Projected (%d): $%.2f\n\n", r.Request.TargetYear, p.ProjectedPerCapitaUSD)

	if len(p.ComparableCountries) > 0 {
		fmt.Fprintf(&b, "Countries whose per-capita GDP is closest today:\n\n")
		for _, c := range p.ComparableCountries {
			fmt.Fprintf(&b, "- **%s**: $%.2f\n", c.Country, c.PerCapitaUSD)
		}
		b.WriteString("\n")
	}

	if len(r.Snapshot.Degraded) > 0 {
		fmt.Fprintf(&b, "*Note: fallback constants were used for: %s.*\n", strings.Join(r.Snapshot.Degraded, ", "))
	}

	return b.String()
}

// formatPopulation renders a population rounded to the nearest integer with
// thousands separators. Rounding happens here, at presentation time only.
func formatPopulation(pop float64) string {
	n := int64(math.Round(pop))
	s := fmt.Sprintf("%d", n)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 && c != '-' {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

// RenderHTML converts Markdown to HTML with goldmark.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}

// Validate checks the document parses as Markdown. Goldmark is permissive, so
// this only guards against truly broken input.
func Validate(markdown string) bool {
	doc := goldmark.DefaultParser().Parse(text.NewReader([]byte(markdown)))
	return doc != nil
}

// Package coverage computes how far a customer's current tools are from its baseline.
// Everything here is pure: callers load the records and pass them in.
package coverage

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/coretech/stack-tracker/internal/domain"
)

// Result is a covered/total ratio. Pct is 100 when Total is 0.
type Result struct {
	Covered int
	Total   int
	Pct     float64
}

// Rounded returns Pct rounded half up to a whole percent
func (r Result) Rounded() int {
	return roundHalfUp(r.Pct)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func newResult(covered, total int) Result {
	if total == 0 {
		return Result{Covered: covered, Total: 0, Pct: 100}
	}
	return Result{Covered: covered, Total: total, Pct: float64(covered) / float64(total) * 100}
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Coverage counts how many distinct required ids appear in current
func Coverage(current, required []string) Result {
	have := toSet(current)
	req := distinct(required)
	covered := 0
	for _, id := range req {
		if _, ok := have[id]; ok {
			covered++
		}
	}
	return newResult(covered, len(req))
}

// Missing returns the distinct required ids absent from current, in first-appearance order
func Missing(current, required []string) []string {
	have := toSet(current)
	missing := []string{}
	for _, id := range distinct(required) {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// CategoryRow is the coverage of the required tools that belong to one category
type CategoryRow struct {
	Category domain.Category
	Result
}

// CategoryCoverage groups the required tools by category. Ids that do not resolve to a tool,
// or whose tool's category is not in categories, are left out. Rows follow the order of
// categories and only categories with at least one required tool are returned.
func CategoryCoverage(current, required []string, tools []domain.Tool, categories []domain.Category) []CategoryRow {
	toolCategory := make(map[string]string, len(tools))
	for _, t := range tools {
		toolCategory[t.ID.String()] = t.CategoryID.String()
	}
	have := toSet(current)

	covered := make(map[string]int)
	total := make(map[string]int)
	for _, id := range distinct(required) {
		categoryID, ok := toolCategory[id]
		if !ok {
			continue
		}
		total[categoryID]++
		if _, ok := have[id]; ok {
			covered[categoryID]++
		}
	}

	rows := []CategoryRow{}
	for _, c := range categories {
		key := c.ID.String()
		if total[key] == 0 {
			continue
		}
		rows = append(rows, CategoryRow{Category: c, Result: newResult(covered[key], total[key])})
	}
	return rows
}

// OptionalRecommendations returns the baseline's optional ids the customer does not run yet
func OptionalRecommendations(baseline *domain.Baseline, customer *domain.Customer) []string {
	return Missing(customer.CurrentToolIDs, baseline.OptionalToolIDs)
}

// Report is the complete gap analysis of one customer against its baseline
type Report struct {
	Customer domain.Customer
	Baseline domain.Baseline
	// Required covers required tools only
	Required Result
	// Overall covers required and optional tools over one combined denominator
	Overall         Result
	Categories      []CategoryRow
	MissingRequired []domain.Tool
	Recommendations []domain.Tool
	TotalRequired   int
	TotalOptional   int
}

// BuildReport assembles a Report. Tool ids that no longer resolve to a tool are dropped
// from every list and total.
func BuildReport(customer *domain.Customer, baseline *domain.Baseline, tools []domain.Tool, categories []domain.Category) *Report {
	byID := make(map[string]domain.Tool, len(tools))
	for _, t := range tools {
		byID[t.ID.String()] = t
	}
	resolved := func(ids []string) []string {
		out := []string{}
		for _, id := range distinct(ids) {
			if _, ok := byID[id]; ok {
				out = append(out, id)
			}
		}
		return out
	}
	lookup := func(ids []string) []domain.Tool {
		out := make([]domain.Tool, 0, len(ids))
		for _, id := range ids {
			out = append(out, byID[id])
		}
		return out
	}

	current := []string(customer.CurrentToolIDs)
	required := resolved(baseline.RequiredToolIDs)
	optional := resolved(baseline.OptionalToolIDs)
	combined := distinct(append(append([]string{}, required...), optional...))

	return &Report{
		Customer:        *customer,
		Baseline:        *baseline,
		Required:        Coverage(current, required),
		Overall:         Coverage(current, combined),
		Categories:      CategoryCoverage(current, required, tools, categories),
		MissingRequired: lookup(Missing(current, required)),
		Recommendations: lookup(Missing(current, optional)),
		TotalRequired:   len(required),
		TotalOptional:   len(optional),
	}
}

// RenderText serializes a report to the plain-text export format. Lines are joined with
// "\n" and there is no trailing newline.
func RenderText(r *Report) string {
	lines := []string{
		"CoreTech Stack Alignment Tool — Gap Report",
		"Customer: " + r.Customer.Name,
		"Baseline: " + r.Baseline.Name,
		fmt.Sprintf("Coverage: %d%% (%d/%d)", r.Required.Rounded(), r.Required.Covered, r.Required.Total),
		"",
		"Missing tools:",
	}
	if len(r.MissingRequired) == 0 {
		lines = append(lines, "- None (fully aligned)")
	}
	for _, t := range r.MissingRequired {
		lines = append(lines, "- "+t.Name)
	}

	lines = append(lines, "", "Category coverage:")
	for _, row := range r.Categories {
		lines = append(lines, fmt.Sprintf("- %s: %d%% (%d/%d)", row.Category.Name, row.Rounded(), row.Covered, row.Total))
	}

	lines = append(lines, "", "Optional recommendations:")
	if len(r.Recommendations) == 0 {
		lines = append(lines, "- None")
	}
	for _, t := range r.Recommendations {
		lines = append(lines, "- "+t.Name)
	}

	return strings.Join(lines, "\n")
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExportFilename names the text export of a customer's report on the given date
func ExportFilename(customerName string, date time.Time) string {
	return fmt.Sprintf("stack-tracker_gap-report_%s_%s.txt",
		whitespaceRun.ReplaceAllString(customerName, "-"),
		date.Format("2006-01-02"),
	)
}

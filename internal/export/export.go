// Package export renders analysis records as plain text for copying or
// downloading.
package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Plan renders the 7-day plan, one blank line between days.
func Plan(record *types.AnalysisRecord) string {
	parts := make([]string, 0, len(record.Plan))
	for _, day := range record.Plan {
		parts = append(parts, fmt.Sprintf("%s: %s\n%s", day.Day, day.Title, day.Desc))
	}
	return strings.Join(parts, "\n\n")
}

// Checklist renders the round-wise checklist with dashed items.
func Checklist(record *types.AnalysisRecord) string {
	parts := make([]string, 0, len(record.Checklist))
	for _, round := range record.Checklist {
		lines := make([]string, 0, len(round.Items)+1)
		lines = append(lines, round.Title)
		for _, item := range round.Items {
			lines = append(lines, "- "+item)
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// Questions renders the interview questions as a numbered list.
func Questions(record *types.AnalysisRecord) string {
	lines := make([]string, 0, len(record.Questions))
	for i, q := range record.Questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q))
	}
	return strings.Join(lines, "\n")
}

// Document renders the full downloadable report.
func Document(record *types.AnalysisRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Role: %s\n", record.DisplayRole())
	fmt.Fprintf(&b, "Company: %s\n", record.DisplayCompany())
	fmt.Fprintf(&b, "Score: %d/100\n\n", record.FinalScore)

	b.WriteString("=== EXTRACTED SKILLS ===\n")
	for _, category := range types.CategoryOrder() {
		skills := record.ExtractedSkills[category]
		if len(skills) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", category, strings.Join(skills, ", "))
	}

	if record.CompanyIntel != nil {
		b.WriteString("\n=== COMPANY INTEL ===\n")
		fmt.Fprintf(&b, "Industry: %s\n", record.CompanyIntel.Industry)
		fmt.Fprintf(&b, "Size: %s\n", record.CompanyIntel.Size)
		fmt.Fprintf(&b, "Focus: %s\n", record.CompanyIntel.Focus)
	}

	b.WriteString("\n=== ROUND MAPPING ===\n")
	for _, round := range record.RoundMapping {
		fmt.Fprintf(&b, "%s: %s\n%s\n\n", round.Title, strings.Join(round.FocusAreas, ", "), round.Why)
	}

	b.WriteString("=== ROUND CHECKLIST ===\n")
	for _, round := range record.Checklist {
		b.WriteString(round.Title + "\n")
		for _, item := range round.Items {
			b.WriteString("- " + item + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("=== 7-DAY PLAN ===\n")
	for _, day := range record.Plan {
		fmt.Fprintf(&b, "%s: %s\n%s\n\n", day.Day, day.Title, day.Desc)
	}

	b.WriteString("=== 10 INTERVIEW QUESTIONS ===\n")
	for i, q := range record.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}

	return b.String()
}

// Filename builds a download name from the company and role, with
// whitespace collapsed to underscores.
func Filename(record *types.AnalysisRecord) string {
	return fmt.Sprintf("Prep_%s_%s.txt", sanitize(record.Company), sanitize(record.Role))
}

func sanitize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Unknown"
	}
	return whitespaceRe.ReplaceAllString(s, "_")
}

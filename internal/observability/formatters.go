// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of an analysis result.
func (p *Printer) PrintAnalysis(record *types.AnalysisRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", record.DisplayCompany()))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", record.DisplayRole()))
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", record.FinalScore))

	if record.CompanyIntel != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Tier:     %s\n", record.CompanyIntel.Size))
		sb.WriteString(fmt.Sprintf("Focus:    %s\n", record.CompanyIntel.Focus))
	}

	p.printBox("JD ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the extracted skills grouped by category.
func (p *Printer) PrintSkills(record *types.AnalysisRecord) {
	if record == nil || len(record.ExtractedSkills) == 0 {
		return
	}

	var sb strings.Builder
	total := len(record.FlatSkills())
	sb.WriteString(fmt.Sprintf("Detected %d skills:\n\n", total))

	for _, category := range types.CategoryOrder() {
		skills := record.ExtractedSkills[category]
		if len(skills) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", category))
		count := min(len(skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
		}
		if len(skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoundMapping outputs the predicted interview rounds.
func (p *Printer) PrintRoundMapping(record *types.AnalysisRecord) {
	if record == nil || len(record.RoundMapping) == 0 {
		return
	}

	var sb strings.Builder
	for i, round := range record.RoundMapping {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, round.Title))
		focus := strings.Join(round.FocusAreas, ", ")
		if len(focus) > 45 {
			focus = focus[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("    Focus: %s\n", focus))
		if i < len(record.RoundMapping)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PREDICTED ROUNDS", sb.String())
}

// PrintActionNext outputs the weakest areas to focus on, if any.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintActionNext(record *types.AnalysisRecord) {
	if record == nil {
		return
	}

	weak := record.WeakSkills()
	if len(weak) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL SKILLS MARKED AS KNOWN")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString("Focus on your weakest areas:\n\n")
	for _, skill := range weak {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", skill))
	}
	sb.WriteString("\nSuggested next action: start the Day 1 plan now.")

	p.printBox("ACTION NEXT", sb.String())
}

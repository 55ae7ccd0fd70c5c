package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/placement-prep/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleRecord() *types.AnalysisRecord {
	return &types.AnalysisRecord{
		Company: "Acme Corp",
		Role:    "Backend Engineer",
		ExtractedSkills: map[types.SkillCategory][]string{
			types.CategoryWeb:  {"React", "Node.js"},
			types.CategoryData: {"SQL"},
		},
		CompanyIntel: &types.CompanyIntel{
			Industry: "Technology Services",
			Size:     "Startup (<200)",
			Focus:    "Practical problem solving + stack depth",
		},
		RoundMapping: []types.Round{
			{Title: "Practical coding round", FocusAreas: []string{"React", "SQL"}},
			{Title: "System discussion", FocusAreas: []string{"Architecture"}},
		},
		SkillConfidenceMap: map[string]types.Confidence{
			"React":   types.ConfidencePractice,
			"Node.js": types.ConfidenceKnow,
			"SQL":     types.ConfidencePractice,
		},
		BaseScore:  60,
		FinalScore: 58,
	}
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(sampleRecord())
	output := buf.String()

	assert.Contains(t, output, "JD ANALYSIS")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "58/100")
	assert.Contains(t, output, "Startup (<200)")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAnalysis_UnknownCompany(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.AnalysisRecord{FinalScore: 20})
	output := buf.String()

	assert.Contains(t, output, "Unknown Company")
	assert.Contains(t, output, "Unknown Role")
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills(sampleRecord())
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED SKILLS")
	assert.Contains(t, output, "Detected 3 skills")
	assert.Contains(t, output, "Web:")
	assert.Contains(t, output, "• React")
	assert.Contains(t, output, "• SQL")
}

func TestPrintSkills_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills(&types.AnalysisRecord{})

	assert.Empty(t, buf.String())
}

func TestPrintRoundMapping(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoundMapping(sampleRecord())
	output := buf.String()

	assert.Contains(t, output, "PREDICTED ROUNDS")
	assert.Contains(t, output, "#1  Practical coding round")
	assert.Contains(t, output, "#2  System discussion")
	assert.Contains(t, output, "Focus: React, SQL")
}

func TestPrintActionNext_WeakSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintActionNext(sampleRecord())
	output := buf.String()

	assert.Contains(t, output, "ACTION NEXT")
	assert.Contains(t, output, "⚠ React")
	assert.Contains(t, output, "⚠ SQL")
	assert.NotContains(t, output, "⚠ Node.js")
}

func TestPrintActionNext_AllKnown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := sampleRecord()
	for skill := range record.SkillConfidenceMap {
		record.SkillConfidenceMap[skill] = types.ConfidenceKnow
	}

	p.PrintActionNext(record)

	assert.Contains(t, buf.String(), "ALL SKILLS MARKED AS KNOWN")
}

// Package types provides type definitions for structured data used throughout the placement-prep system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// SkillCategory identifies one of the fixed skill buckets of the JD dictionary.
// The set is closed; free-form category strings are not accepted anywhere.
type SkillCategory string

// The full category set. CategoryOther only ever holds the fallback
// placeholder skills used when a JD matches nothing.
const (
	CategoryCoreCS    SkillCategory = "Core CS"
	CategoryLanguages SkillCategory = "Languages"
	CategoryWeb       SkillCategory = "Web"
	CategoryData      SkillCategory = "Data"
	CategoryCloud     SkillCategory = "Cloud/DevOps"
	CategoryTesting   SkillCategory = "Testing"
	CategoryOther     SkillCategory = "Other"
)

// Confidence is a user's self-assessment for a single extracted skill.
type Confidence string

// Confidence values. Every skill starts at ConfidencePractice.
const (
	ConfidenceKnow     Confidence = "know"
	ConfidencePractice Confidence = "practice"
)

// CompanyIntel is the heuristic company classification derived from the
// company name. It is a coarse name-list lookup, not a verified profile.
type CompanyIntel struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Size     string `json:"size"`
	Focus    string `json:"focus"`
}

// Round is one stage of the derived interview round mapping.
type Round struct {
	Title      string   `json:"roundTitle"`
	FocusAreas []string `json:"focusAreas"`
	Why        string   `json:"whyItMatters"`
}

// ChecklistRound is one round of the preparation checklist with its items.
type ChecklistRound struct {
	Title string   `json:"roundTitle"`
	Items []string `json:"items"`
}

// PlanDay is one block of the 7-day study plan.
type PlanDay struct {
	Day   string `json:"day"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// AnalysisRecord is the persisted unit of work produced by one analyze
// action. Everything except SkillConfidenceMap, FinalScore and UpdatedAt
// is write-once at creation.
//
// JSON field names match the persisted history blob format, so stored
// collections written by earlier hosts remain readable.
type AnalysisRecord struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Company string `json:"company"`
	Role    string `json:"role"`
	JDText  string `json:"jdText"`

	ExtractedSkills map[SkillCategory][]string `json:"extractedSkills"`
	CompanyIntel    *CompanyIntel              `json:"companyIntel,omitempty"`
	RoundMapping    []Round                    `json:"roundMapping"`
	Checklist       []ChecklistRound           `json:"checklist"`
	Plan            []PlanDay                  `json:"plan"`
	Questions       []string                   `json:"questions"`

	BaseScore          int                   `json:"baseScore"`
	SkillConfidenceMap map[string]Confidence `json:"skillConfidenceMap"`
	FinalScore         int                   `json:"finalScore"`
}

// CategoryOrder is the canonical iteration order for extracted skill
// categories. Flattened skill lists and rendered output follow it.
func CategoryOrder() []SkillCategory {
	return []SkillCategory{
		CategoryCoreCS,
		CategoryLanguages,
		CategoryWeb,
		CategoryData,
		CategoryCloud,
		CategoryTesting,
		CategoryOther,
	}
}

// FlatSkills returns all extracted skills in canonical category order.
func (r *AnalysisRecord) FlatSkills() []string {
	var flat []string
	for _, cat := range CategoryOrder() {
		flat = append(flat, r.ExtractedSkills[cat]...)
	}
	return flat
}

// HasSkill reports whether skill appears in any extracted category.
func (r *AnalysisRecord) HasSkill(skill string) bool {
	for _, skills := range r.ExtractedSkills {
		for _, s := range skills {
			if s == skill {
				return true
			}
		}
	}
	return false
}

// WeakSkills returns up to three skills still marked "practice", in
// canonical order. Used for the next-action suggestion.
func (r *AnalysisRecord) WeakSkills() []string {
	var weak []string
	for _, skill := range r.FlatSkills() {
		if r.SkillConfidenceMap[skill] != ConfidenceKnow {
			weak = append(weak, skill)
			if len(weak) == 3 {
				break
			}
		}
	}
	return weak
}

// DisplayCompany returns the company name or a placeholder when the
// free-text field was left empty.
func (r *AnalysisRecord) DisplayCompany() string {
	if r.Company == "" {
		return "Unknown Company"
	}
	return r.Company
}

// DisplayRole returns the role or a placeholder when the free-text field
// was left empty.
func (r *AnalysisRecord) DisplayRole() string {
	if r.Role == "" {
		return "Unknown Role"
	}
	return r.Role
}

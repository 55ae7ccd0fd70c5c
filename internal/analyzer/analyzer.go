package analyzer

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/placement-prep/internal/skills"
	"github.com/jonathan/placement-prep/internal/types"
)

// Analyze runs the full offline analysis over one JD input and returns a
// freshly created record. Pure aside from the assigned ID and timestamps;
// input validation and persistence belong to the caller.
func Analyze(company, role, jdText string) *types.AnalysisRecord {
	extracted, matchedCategories := skills.Extract(jdText)
	flat := skills.Flatten(extracted)
	hasSkills := matchedCategories > 0

	baseScore := ComputeBaseScore(matchedCategories, company, role, jdText)

	// Every extracted skill (the fallback set included) starts at
	// "practice", so the confidence map and extracted skills cover each
	// other exactly.
	confidence := make(map[string]types.Confidence, len(flat))
	for _, skill := range flat {
		confidence[skill] = types.ConfidencePractice
	}

	intel, rounds := ClassifyCompany(company)

	now := time.Now().UTC()
	return &types.AnalysisRecord{
		ID:                 uuid.New(),
		CreatedAt:          now,
		UpdatedAt:          now,
		Company:            company,
		Role:               role,
		JDText:             jdText,
		ExtractedSkills:    extracted,
		CompanyIntel:       intel,
		RoundMapping:       rounds,
		Checklist:          BuildChecklist(flat, company),
		Plan:               BuildPlan(extracted, hasSkills),
		Questions:          BuildQuestions(flat),
		BaseScore:          baseScore,
		SkillConfidenceMap: confidence,
		FinalScore:         RecomputeFinalScore(baseScore, confidence),
	}
}

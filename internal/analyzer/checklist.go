package analyzer

import (
	"fmt"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// BuildChecklist produces the four-round preparation checklist. Items are
// fixed except the tech-interview revision item, which references up to
// the first three flattened skills, and the HR research item, which
// interpolates the company name.
func BuildChecklist(flatSkills []string, company string) []types.ChecklistRound {
	reviseItem := "Revise your strongest programming language"
	if len(flatSkills) > 0 {
		top := flatSkills
		if len(top) > 3 {
			top = top[:3]
		}
		reviseItem = "Revise concepts for: " + strings.Join(top, ", ")
	}

	researchTarget := strings.TrimSpace(company)
	if researchTarget == "" {
		researchTarget = "the company"
	}

	return []types.ChecklistRound{
		{
			Title: "Round 1: Aptitude / Basics",
			Items: []string{
				"Review quantitative aptitude formulas",
				"Practice logical reasoning puzzles",
				"Brush up on verbal ability",
				"Revise basic CS fundamentals",
				"Take 1 full-length aptitude mock",
			},
		},
		{
			Title: "Round 2: DSA + Core CS",
			Items: []string{
				"Practice array and string manipulation",
				"Review linked lists, stacks, and queues",
				"Solve basic tree and graph problems",
				"Revise Time/Space complexity",
				"Brush up on sorting and searching algorithms",
			},
		},
		{
			Title: "Round 3: Tech interview (projects + stack)",
			Items: []string{
				"Prepare a 2-minute project pitch",
				"Review architecture of past projects",
				"Prepare for deep-dive into your specific code",
				reviseItem,
				"Practice whiteboarding solutions",
			},
		},
		{
			Title: "Round 4: Managerial / HR",
			Items: []string{
				"Prepare STAR method stories for common behavioral questions",
				fmt.Sprintf("Research %s's recent news and culture", researchTarget),
				"Prepare 3 strong questions to ask the interviewer",
				"Review salary expectations and negotiation strategy",
				"Ensure quiet environment and technical setup for call",
			},
		},
	}
}

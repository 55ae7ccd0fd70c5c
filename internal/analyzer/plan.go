package analyzer

import (
	"github.com/jonathan/placement-prep/internal/types"
)

// BuildPlan produces the five-block 7-day study plan. Days 1-2, 3-4, 6
// and 7 are fixed; day 5 adapts to the extracted Web and Data skills, or
// switches to a soft-skills block when the JD matched nothing.
func BuildPlan(extracted map[types.SkillCategory][]string, hasSkills bool) []types.PlanDay {
	day5Title := "Project + resume alignment"
	day5Desc := "Align your resume with the JD and revise your tech stack."
	if hasSkills {
		if len(extracted[types.CategoryWeb]) > 0 {
			day5Title += " + Frontend/Backend Revision"
		}
		if len(extracted[types.CategoryData]) > 0 {
			day5Title += " + Database & SQL Revision"
		}
	} else {
		day5Title = "Soft skills + project storytelling"
		day5Desc = "Polish your project narratives and practice explaining your work clearly."
	}

	return []types.PlanDay{
		{Day: "Day 1–2", Title: "Basics + Core CS", Desc: "Brush up on OS, Networks, DBMS, and OOP concepts."},
		{Day: "Day 3–4", Title: "DSA + Coding Practice", Desc: "Focus on frequent patterns, arrays, strings, and trees."},
		{Day: "Day 5", Title: day5Title, Desc: day5Desc},
		{Day: "Day 6", Title: "Mock Interview Questions", Desc: "Practice speaking solutions out loud with a timer."},
		{Day: "Day 7", Title: "Revision + Weak Areas", Desc: "Go over formulas, complex concepts, and rest well."},
	}
}

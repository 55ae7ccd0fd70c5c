package analyzer

import (
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// enterpriseCompanies is the closed list of known large employers used to
// branch the company heuristic. A coarse name lookup for demo-quality
// intel, not a verified company database.
var enterpriseCompanies = map[string]bool{
	"amazon":        true,
	"google":        true,
	"microsoft":     true,
	"meta":          true,
	"apple":         true,
	"netflix":       true,
	"infosys":       true,
	"tcs":           true,
	"wipro":         true,
	"hcl":           true,
	"cognizant":     true,
	"ibm":           true,
	"accenture":     true,
	"capgemini":     true,
	"oracle":        true,
	"cisco":         true,
	"deloitte":      true,
	"pwc":           true,
	"ey":            true,
	"kpmg":          true,
	"tech mahindra": true,
}

// ClassifyCompany derives company intel and the interview round mapping
// from the company name. With no name, intel is nil and the startup-style
// default mapping is returned.
func ClassifyCompany(company string) (*types.CompanyIntel, []types.Round) {
	name := strings.TrimSpace(company)
	if name == "" {
		return nil, startupRounds()
	}

	if enterpriseCompanies[strings.ToLower(name)] {
		intel := &types.CompanyIntel{
			Name:     name,
			Industry: "Technology Services",
			Size:     "Enterprise (2000+)",
			Focus:    "Structured DSA + core fundamentals",
		}
		return intel, enterpriseRounds()
	}

	intel := &types.CompanyIntel{
		Name:     name,
		Industry: "Technology Services",
		Size:     "Startup (<200)",
		Focus:    "Practical problem solving + stack depth",
	}
	return intel, startupRounds()
}

func enterpriseRounds() []types.Round {
	return []types.Round{
		{
			Title:      "Round 1: Online Test",
			FocusAreas: []string{"DSA", "Aptitude"},
			Why:        "Filters candidates based on core problem-solving speed and logic.",
		},
		{
			Title:      "Round 2: Technical",
			FocusAreas: []string{"DSA", "Core CS"},
			Why:        "Evaluates deep understanding of data structures and computer science fundamentals.",
		},
		{
			Title:      "Round 3: Tech + Projects",
			FocusAreas: []string{"Stack Implementation"},
			Why:        "Assesses practical application of your tech stack in real-world scenarios.",
		},
		{
			Title:      "Round 4: HR",
			FocusAreas: []string{"Behavioral"},
			Why:        "Checks behavioral fit, leadership principles, and communication.",
		},
	}
}

func startupRounds() []types.Round {
	return []types.Round{
		{
			Title:      "Round 1: Practical coding",
			FocusAreas: []string{"Take-home or pair programming"},
			Why:        "Tests your ability to build functional features quickly and cleanly.",
		},
		{
			Title:      "Round 2: System discussion",
			FocusAreas: []string{"Architecture deep dive"},
			Why:        "Evaluates how you architect solutions and understand your specific tech stack.",
		},
		{
			Title:      "Round 3: Culture fit",
			FocusAreas: []string{"Founder or team round"},
			Why:        "Ensures you align with the fast-paced, ownership-driven startup environment.",
		},
	}
}

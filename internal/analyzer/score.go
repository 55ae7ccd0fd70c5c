// Package analyzer turns free-text job descriptions into analysis records:
// extracted skills, a readiness score and derived preparation artifacts.
// Everything here is deterministic and runs offline.
package analyzer

import (
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

const (
	// scoreFloor is the starting base score before any signal bonus.
	scoreFloor = 35
	// categoryBonus is added per matched category, capped at categoryBonusCap.
	categoryBonus    = 5
	categoryBonusCap = 30
	// contextBonus is added once each for a non-empty company, a non-empty
	// role, and a long JD.
	contextBonus = 10
	// longJDLength and shortJDLength are the trimmed-length thresholds for
	// the long-JD bonus and the short-JD penalty.
	longJDLength   = 800
	shortJDLength  = 50
	shortJDPenalty = 15

	// confidenceStep is how much each confidence toggle moves the final
	// score, up for "know" and down for "practice".
	confidenceStep = 2

	// AdvisoryMinJDLength is the trimmed length below which an analysis is
	// flagged as potentially shallow. Non-blocking.
	AdvisoryMinJDLength = 200
)

// ComputeBaseScore derives the write-once base score from structural
// signals of the input. The result is clamped to [0,100].
func ComputeBaseScore(matchedCategories int, company, role, jdText string) int {
	score := scoreFloor
	score += min(categoryBonusCap, matchedCategories*categoryBonus)

	if strings.TrimSpace(company) != "" {
		score += contextBonus
	}
	if strings.TrimSpace(role) != "" {
		score += contextBonus
	}

	jdLen := len(strings.TrimSpace(jdText))
	if jdLen > longJDLength {
		score += contextBonus
	}
	if jdLen < shortJDLength {
		score -= shortJDPenalty
	}

	return clampScore(score)
}

// RecomputeFinalScore derives the readiness score from the base score and
// the current confidence map. Pure function; callable on every toggle
// without re-running extraction.
func RecomputeFinalScore(baseScore int, confidence map[string]types.Confidence) int {
	score := baseScore
	for _, c := range confidence {
		if c == types.ConfidenceKnow {
			score += confidenceStep
		} else {
			score -= confidenceStep
		}
	}
	return clampScore(score)
}

// ShortJD reports whether the trimmed JD text is below the advisory
// quality threshold.
func ShortJD(jdText string) bool {
	return len(strings.TrimSpace(jdText)) < AdvisoryMinJDLength
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

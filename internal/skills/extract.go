package skills

import (
	"regexp"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// matcher pairs a dictionary keyword with its precompiled whole-word pattern.
type matcher struct {
	keyword string
	re      *regexp.Regexp
}

// matchers holds the precompiled keyword patterns per category, built once
// at startup so the matching rule is a single reviewable artifact.
var matchers = buildMatchers()

func buildMatchers() map[types.SkillCategory][]matcher {
	out := make(map[types.SkillCategory][]matcher, len(dictionary))
	for cat, keywords := range dictionary {
		ms := make([]matcher, 0, len(keywords))
		for _, kw := range keywords {
			// Word boundaries keep "go" from matching inside "going".
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
			ms = append(ms, matcher{keyword: kw, re: re})
		}
		out[cat] = ms
	}
	return out
}

// Extract scans the JD text for dictionary keywords and returns the
// matched skills per category (canonical-cased, deduplicated) along with
// the number of categories that matched at least one keyword.
//
// When nothing matches at all, CategoryOther is populated with the
// fallback placeholder set; the returned category count stays zero so the
// fallback never inflates the readiness score.
func Extract(jdText string) (map[types.SkillCategory][]string, int) {
	text := strings.ToLower(jdText)

	extracted := make(map[types.SkillCategory][]string)
	matchedCategories := 0

	for _, cat := range dictionaryCategories {
		var found []string
		seen := make(map[string]bool)
		for _, m := range matchers[cat] {
			if !m.re.MatchString(text) {
				continue
			}
			label := Canonical(m.keyword)
			if seen[label] {
				continue
			}
			seen[label] = true
			found = append(found, label)
		}
		if len(found) > 0 {
			extracted[cat] = found
			matchedCategories++
		}
	}

	if matchedCategories == 0 {
		extracted[types.CategoryOther] = FallbackSkills()
	}

	return extracted, matchedCategories
}

// Package skills provides the fixed skill taxonomy and keyword extraction
// over free-text job descriptions.
package skills

import (
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// dictionary maps each category to its ordered keyword list. Keywords are
// stored lowercase; matching is case-insensitive and whole-word.
var dictionary = map[types.SkillCategory][]string{
	types.CategoryCoreCS:    {"dsa", "oop", "dbms", "os", "networks", "data structures", "algorithms"},
	types.CategoryLanguages: {"java", "python", "javascript", "typescript", "c", "c++", "c#", "go", "golang"},
	types.CategoryWeb:       {"react", "next.js", "node.js", "express", "rest", "graphql", "html", "css", "frontend", "backend"},
	types.CategoryData:      {"sql", "mongodb", "postgresql", "mysql", "redis", "database"},
	types.CategoryCloud:     {"aws", "azure", "gcp", "docker", "kubernetes", "ci/cd", "linux", "devops", "k8s"},
	types.CategoryTesting:   {"selenium", "cypress", "playwright", "junit", "pytest", "jest", "mocha"},
}

// dictionaryCategories is the ordered category list for extraction.
// CategoryOther has no keywords; it only receives the fallback set.
var dictionaryCategories = []types.SkillCategory{
	types.CategoryCoreCS,
	types.CategoryLanguages,
	types.CategoryWeb,
	types.CategoryData,
	types.CategoryCloud,
	types.CategoryTesting,
}

// casingOverrides restores canonical casing for acronym keywords.
var casingOverrides = map[string]string{
	"dsa":   "DSA",
	"oop":   "OOP",
	"dbms":  "DBMS",
	"os":    "OS",
	"ci/cd": "CI/CD",
	"aws":   "AWS",
	"gcp":   "GCP",
	"rest":  "REST",
}

// FallbackSkills is the placeholder set substituted into CategoryOther
// when no keyword matches, so the generated artifacts always have at
// least one skill to reference.
func FallbackSkills() []string {
	return []string{"Communication", "Problem solving", "Basic coding", "Projects"}
}

// Canonical returns the display casing for a dictionary keyword: a
// hard-coded override for acronyms, first letter upper-cased otherwise.
func Canonical(keyword string) string {
	if c, ok := casingOverrides[keyword]; ok {
		return c
	}
	if keyword == "" {
		return keyword
	}
	return strings.ToUpper(keyword[:1]) + keyword[1:]
}

// Flatten returns all skills of the mapping in canonical category order.
func Flatten(extracted map[types.SkillCategory][]string) []string {
	var flat []string
	for _, cat := range types.CategoryOrder() {
		flat = append(flat, extracted[cat]...)
	}
	return flat
}

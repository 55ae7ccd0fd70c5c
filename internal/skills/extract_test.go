package skills

import (
	"testing"

	"github.com/jonathan/placement-prep/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_SingleCategory(t *testing.T) {
	extracted, matched := Extract("We are looking for a react developer.")

	require.Equal(t, 1, matched)
	assert.Equal(t, []string{"React"}, extracted[types.CategoryWeb])
	assert.NotContains(t, extracted, types.CategoryOther)
}

func TestExtract_MultipleCategories(t *testing.T) {
	extracted, matched := Extract("Strong SQL and Docker experience, plus React and DSA practice.")

	require.Equal(t, 4, matched)
	assert.Equal(t, []string{"DSA"}, extracted[types.CategoryCoreCS])
	assert.Equal(t, []string{"React"}, extracted[types.CategoryWeb])
	assert.Equal(t, []string{"Sql"}, extracted[types.CategoryData])
	assert.Equal(t, []string{"Docker"}, extracted[types.CategoryCloud])
}

func TestExtract_WordBoundary(t *testing.T) {
	// "going" must not match the language keyword "go".
	extracted, matched := Extract("We are going to hire soon.")

	assert.Equal(t, 0, matched)
	assert.NotContains(t, extracted, types.CategoryLanguages)
}

func TestExtract_StandaloneGo(t *testing.T) {
	extracted, matched := Extract("Backend services written in Go.")

	require.Equal(t, 2, matched)
	assert.Equal(t, []string{"Go"}, extracted[types.CategoryLanguages])
	assert.Equal(t, []string{"Backend"}, extracted[types.CategoryWeb])
}

func TestExtract_CaseInsensitive(t *testing.T) {
	extracted, matched := Extract("REACT, sql, DOCKER")

	require.Equal(t, 3, matched)
	assert.Equal(t, []string{"React"}, extracted[types.CategoryWeb])
	assert.Equal(t, []string{"Sql"}, extracted[types.CategoryData])
	assert.Equal(t, []string{"Docker"}, extracted[types.CategoryCloud])
}

func TestExtract_AcronymCasing(t *testing.T) {
	extracted, matched := Extract("Knowledge of dbms, os, aws and ci/cd pipelines.")

	require.Equal(t, 2, matched)
	assert.Equal(t, []string{"DBMS", "OS"}, extracted[types.CategoryCoreCS])
	assert.Equal(t, []string{"AWS", "CI/CD"}, extracted[types.CategoryCloud])
}

func TestExtract_KeywordOrderPreserved(t *testing.T) {
	extracted, _ := Extract("golang and go and java and python")

	// Dictionary order, not text order.
	assert.Equal(t, []string{"Java", "Python", "Go", "Golang"}, extracted[types.CategoryLanguages])
}

func TestExtract_NoMatchesUsesFallback(t *testing.T) {
	extracted, matched := Extract("A role about nothing in particular.")

	assert.Equal(t, 0, matched)
	assert.Equal(t, FallbackSkills(), extracted[types.CategoryOther])
	require.Len(t, extracted, 1)
}

func TestExtract_EmptyText(t *testing.T) {
	extracted, matched := Extract("")

	assert.Equal(t, 0, matched)
	assert.Equal(t, FallbackSkills(), extracted[types.CategoryOther])
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "DSA", Canonical("dsa"))
	assert.Equal(t, "REST", Canonical("rest"))
	assert.Equal(t, "React", Canonical("react"))
	assert.Equal(t, "Next.js", Canonical("next.js"))
	assert.Equal(t, "", Canonical(""))
}

func TestFlatten_CategoryOrder(t *testing.T) {
	extracted := map[types.SkillCategory][]string{
		types.CategoryData:   {"Sql"},
		types.CategoryCoreCS: {"DSA"},
		types.CategoryWeb:    {"React"},
	}

	assert.Equal(t, []string{"DSA", "React", "Sql"}, Flatten(extracted))
}

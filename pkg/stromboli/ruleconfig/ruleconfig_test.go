package ruleconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli"
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/transition"
)

const heroTable = `
[[rules]]
from = "List"
to = "Detail"
ids = ["avatar"]
clone = "all"
style = "cross-fade"
clone_style = "fly-over"

[[rules]]
from = "*"
to = "Settings"
style = "slide"
width = 1024
`

func TestParse_BuildsMatchingRules(t *testing.T) {
	rules, err := Parse(heroTable)
	require.NoError(t, err)
	require.Len(t, rules.Rules(), 2)

	rule, err := rules.Match("List", "Detail")
	require.NoError(t, err)
	require.NotNil(t, rule)

	assert.True(t, rule.Filter("avatar"))
	assert.False(t, rule.Filter("title"))
	assert.True(t, rule.ShouldClone(transition.Item{ID: "avatar", RouteName: "List"}, "List", "Detail"))
	assert.NotNil(t, rule.Styles)
	assert.NotNil(t, rule.CloneStyles)

	rule, err = rules.Match("Detail", "Settings")
	require.NoError(t, err)
	require.NotNil(t, rule)
	assert.Nil(t, rule.Filter, "empty ids admits every item")
	assert.Nil(t, rule.ShouldClone, "default clone mode is none")
}

func TestParse_FromRouteCloneMode(t *testing.T) {
	rules, err := Parse(`
[[rules]]
from = "List"
to = "Detail"
clone = "from-route"
`)
	require.NoError(t, err)

	rule, err := rules.Match("List", "Detail")
	require.NoError(t, err)
	require.NotNil(t, rule)

	assert.True(t, rule.ShouldClone(transition.Item{RouteName: "List"}, "List", "Detail"))
	assert.False(t, rule.ShouldClone(transition.Item{RouteName: "Detail"}, "List", "Detail"))
}

func TestParse_UnknownPresetFails(t *testing.T) {
	_, err := Parse(`
[[rules]]
from = "A"
to = "B"
style = "teleport"
`)
	require.Error(t, err)
	assert.True(t, stromboli.IsConfigError(err))
	assert.Contains(t, err.Error(), "teleport")
}

func TestParse_UnknownCloneModeFails(t *testing.T) {
	_, err := Parse(`
[[rules]]
from = "A"
to = "B"
clone = "sometimes"
`)
	require.Error(t, err)
	assert.True(t, stromboli.IsConfigError(err))
}

func TestParse_MissingRoutesFail(t *testing.T) {
	_, err := Parse(`
[[rules]]
to = "B"
`)
	require.Error(t, err)
	assert.True(t, stromboli.IsConfigError(err))
}

func TestParse_SlideRequiresWidth(t *testing.T) {
	_, err := Parse(`
[[rules]]
from = "A"
to = "B"
style = "slide"
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")
}

func TestParse_MalformedTOMLFails(t *testing.T) {
	_, err := Parse(`[[rules`)
	require.Error(t, err)
	assert.True(t, stromboli.IsConfigError(err))
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load("testdata/does-not-exist.toml")
	require.Error(t, err)
	assert.True(t, stromboli.IsConfigError(err))
}

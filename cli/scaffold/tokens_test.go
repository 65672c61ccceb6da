package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMapping(t *testing.T) {
	mapping := NewMapping(map[string]string{
		VarSlug:       "demo-plugin",
		VarPluginName: "Demo Plugin",
		"unrelated":   "ignored",
	})

	require.Len(t, mapping, 2)
	// VarNames order is kept regardless of map iteration order.
	assert.Equal(t, Pair{Token: "{{pluginName}}", Value: "Demo Plugin"}, mapping[0])
	assert.Equal(t, Pair{Token: "{{slug}}", Value: "demo-plugin"}, mapping[1])
}

func TestMappingReplacer(t *testing.T) {
	mapping := NewMapping(map[string]string{
		VarName: "Demo Plugin",
		VarSlug: "demo-plugin",
	})

	replaced := mapping.Replacer().Replace("{{name}} ({{slug}}) {{license}}")
	assert.Equal(t, "Demo Plugin (demo-plugin) {{license}}", replaced)
}

func TestToken(t *testing.T) {
	assert.Equal(t, "{{slug}}", Token(VarSlug))
}

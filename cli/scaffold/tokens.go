package scaffold

import "strings"

// Fixed template variable names. Each one has a matching placeholder token
// of the form {{varName}} in template file contents.
const (
	VarPluginName  = "pluginName"
	VarName        = "name"
	VarSlug        = "slug"
	VarDescription = "description"
	VarAuthorName  = "authorName"
	VarAuthorEmail = "authorEmail"
	VarNamespace   = "namespace"
	VarVendor      = "vendor"
	VarLicense     = "license"
	VarFuncPrefix  = "funcPrefix"
	VarConstPrefix = "constPrefix"
)

// VarNames is the closed set of template variable names, in substitution
// order. No name is a prefix of another, so single-pass literal replacement
// is unambiguous.
var VarNames = []string{
	VarPluginName,
	VarName,
	VarSlug,
	VarDescription,
	VarAuthorName,
	VarAuthorEmail,
	VarNamespace,
	VarVendor,
	VarLicense,
	VarFuncPrefix,
	VarConstPrefix,
}

// Pair binds a single literal placeholder token to its replacement value.
type Pair struct {
	Token string
	Value string
}

// Mapping is an ordered set of token/value pairs applied simultaneously per
// file. Replacement values are never rescanned for other tokens.
type Mapping []Pair

// Token returns the placeholder token for a variable name.
func Token(varName string) string {
	return "{{" + varName + "}}"
}

// NewMapping builds a token mapping from variable values. Only variables
// from the fixed token set become tokens, in VarNames order.
func NewMapping(vars map[string]string) Mapping {
	mapping := make(Mapping, 0, len(VarNames))
	for _, varName := range VarNames {
		value, found := vars[varName]
		if !found {
			continue
		}
		mapping = append(mapping, Pair{Token: Token(varName), Value: value})
	}

	return mapping
}

// Replacer returns a replacer performing single simultaneous replacement of
// every token in the mapping.
func (mapping Mapping) Replacer() *strings.Replacer {
	oldnew := make([]string, 0, len(mapping)*2)
	for _, pair := range mapping {
		oldnew = append(oldnew, pair.Token, pair.Value)
	}

	return strings.NewReplacer(oldnew...)
}

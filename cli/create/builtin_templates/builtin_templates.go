// Package builtin_templates provides plugin templates embedded into the
// wpforge binary.
package builtin_templates

import (
	"embed"
)

//go:embed all:templates
var TemplatesFs embed.FS

// Names contains built-in template names.
var Names = [...]string{"plugin"}

// DefaultName is the template used when no template name is given.
const DefaultName = "plugin"

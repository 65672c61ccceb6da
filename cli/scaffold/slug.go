package scaffold

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a plugin name to its slug form: lower case with runs of
// non-alphanumeric characters collapsed to single dashes.
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// FuncPrefix derives the default function name prefix from a slug.
func FuncPrefix(slug string) string {
	return strings.ReplaceAll(slug, "-", "_")
}

// ConstPrefix derives the default constant name prefix from a slug.
func ConstPrefix(slug string) string {
	return strings.ToUpper(FuncPrefix(slug))
}

// PascalCase converts a slug or plugin name to PascalCase: "demo-plugin"
// becomes "DemoPlugin".
func PascalCase(name string) string {
	words := nonSlugChars.Split(strings.ToLower(name), -1)
	var builder strings.Builder
	for _, word := range words {
		if word == "" {
			continue
		}
		builder.WriteString(strings.ToUpper(word[:1]))
		builder.WriteString(word[1:])
	}

	return builder.String()
}

// Namespace derives the default PHP namespace from a plugin name.
func Namespace(name string) string {
	return PascalCase(name)
}

// Package config provides structures for the wpforge.yaml configuration
// file.
package config

// Config used to store all information from the wpforge.yaml configuration
// file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"wpforge" yaml:"wpforge"`
}

// TemplateOpts stores a single template search location.
//
// wpforge.yaml file format:
//
//	wpforge:
//	  templates:
//	    - path: path/to/templates
//	  composer:
//	    exec: composer
//	    timeout: 10m
type TemplateOpts struct {
	// Path is a directory to search for templates in.
	Path string `mapstructure:"path" yaml:"path"`
}

// ComposerOpts stores dependency installer options.
type ComposerOpts struct {
	// Exec is the composer executable name or path.
	Exec string `mapstructure:"exec" yaml:"exec"`
	// Timeout bounds a single composer run, in Go duration format.
	Timeout string `mapstructure:"timeout" yaml:"timeout"`
}

// CliOpts stores information about wpforge configuration.
// Filled in when parsing the wpforge.yaml configuration file.
type CliOpts struct {
	// Templates is a set of template search locations.
	Templates []TemplateOpts `mapstructure:"templates" yaml:"templates"`
	// Composer is the dependency installer configuration.
	Composer *ComposerOpts `mapstructure:"composer" yaml:"composer"`
}

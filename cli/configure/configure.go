// Package configure locates and loads the wpforge configuration.
package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/wpforge/wpforge/cli/cmdcontext"
	"github.com/wpforge/wpforge/cli/config"
	"github.com/wpforge/wpforge/cli/util"
)

const (
	// ConfigName is the name of the wpforge configuration file.
	ConfigName = "wpforge.yaml"
	// configPathEnvName is an environment variable that contains a path to
	// the configuration file.
	configPathEnvName = "WPFORGE_CONFIG"
	// configHomeEnvName is the XDG config home environment variable.
	configHomeEnvName = "XDG_CONFIG_HOME"
)

const (
	// DefaultComposerExec is the composer executable used when the
	// configuration does not name one.
	DefaultComposerExec = "composer"
	// DefaultComposerTimeout bounds a composer run when the configuration
	// does not set a timeout.
	DefaultComposerTimeout = "10m"
)

// Path to default wpforge.yaml configuration file.
// Defined at build time, see magefile.
var defaultConfigPath string

// GetDefaultCliOpts returns `CliOpts` filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		Templates: []config.TemplateOpts{
			{Path: "templates"},
		},
		Composer: &config.ComposerOpts{
			Exec:    DefaultComposerExec,
			Timeout: DefaultComposerTimeout,
		},
	}
}

// Cli performs initial wpforge configuration: it resolves the configuration
// file path. An explicitly specified file must exist; a missing discovered
// one is fine, defaults are used then.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.ConfigPath != "" {
		if _, err := os.Stat(cmdCtx.Cli.ConfigPath); err != nil {
			return fmt.Errorf("specified config file %q: %s", cmdCtx.Cli.ConfigPath, err)
		}
		return nil
	}

	if envPath := os.Getenv(configPathEnvName); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return fmt.Errorf("config file from %s %q: %s", configPathEnvName, envPath, err)
		}
		cmdCtx.Cli.ConfigPath = envPath
		return nil
	}

	cmdCtx.Cli.ConfigPath = findConfig()

	return nil
}

// findConfig searches for the configuration file: working directory first,
// then XDG config home, then the build-time default path.
func findConfig() string {
	if workDir, err := os.Getwd(); err == nil {
		configPath := filepath.Join(workDir, ConfigName)
		if util.IsRegularFile(configPath) {
			return configPath
		}
	}

	configHome := os.Getenv(configHomeEnvName)
	if configHome == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(homeDir, ".config")
		}
	}
	if configHome != "" {
		configPath := filepath.Join(configHome, "wpforge", ConfigName)
		if util.IsRegularFile(configPath) {
			return configPath
		}
	}

	if defaultConfigPath != "" && util.IsRegularFile(defaultConfigPath) {
		return defaultConfigPath
	}

	return ""
}

// GetCliOpts loads wpforge configuration from configPath. An empty
// configPath is not an error: defaults are returned. Relative template
// search paths are resolved against the configuration file directory.
func GetCliOpts(configPath string) (*config.CliOpts, error) {
	if configPath == "" {
		return GetDefaultCliOpts(), nil
	}

	rawConfigOpts, err := util.ParseYAML(configPath)
	if err != nil {
		return nil, err
	}

	var cfg config.Config
	if err := mapstructure.Decode(rawConfigOpts, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %s", err)
	}
	if cfg.CliConfig == nil {
		return nil, fmt.Errorf("failed to parse %q: missing wpforge section", configPath)
	}

	cliOpts := cfg.CliConfig
	if cliOpts.Composer == nil {
		cliOpts.Composer = &config.ComposerOpts{}
	}
	if cliOpts.Composer.Exec == "" {
		cliOpts.Composer.Exec = DefaultComposerExec
	}
	if cliOpts.Composer.Timeout == "" {
		cliOpts.Composer.Timeout = DefaultComposerTimeout
	}

	configDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, err
	}
	for i := range cliOpts.Templates {
		if !filepath.IsAbs(cliOpts.Templates[i].Path) {
			cliOpts.Templates[i].Path = filepath.Join(configDir, cliOpts.Templates[i].Path)
		}
	}

	return cliOpts, nil
}

// Package install runs the composer dependency installation for a
// materialized plugin project.
package install

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/apex/log"
	goVersion "github.com/hashicorp/go-version"
	"github.com/wpforge/wpforge/cli/config"
	"github.com/wpforge/wpforge/cli/util"
)

// composerVersionMinimum is the oldest composer release wpforge works with.
const composerVersionMinimum = "2.0.0"

var composerVersionPattern = regexp.MustCompile(
	`Composer version ([0-9]+\.[0-9]+\.[0-9]+)`)

// InstallCtx contains information for dependency installation.
type InstallCtx struct {
	// ProjectDir is the materialized plugin project directory.
	ProjectDir string
	// Update runs `composer update` instead of `composer install`.
	Update bool
	// Verbose enables streaming composer output instead of a spinner.
	Verbose bool
}

// parseComposerVersion extracts the composer version from `composer
// --version` output.
func parseComposerVersion(output string) (*goVersion.Version, error) {
	matches := composerVersionPattern.FindStringSubmatch(output)
	if matches == nil {
		return nil, fmt.Errorf("failed to parse composer version from %q",
			strings.TrimSpace(output))
	}

	return goVersion.NewVersion(matches[1])
}

// checkComposer verifies that the composer executable is available and
// recent enough.
func checkComposer(execName string) error {
	if err := util.CheckRequiredBinaries(execName); err != nil {
		return err
	}

	output, err := exec.Command(execName, "--version").Output()
	if err != nil {
		return fmt.Errorf("failed to get composer version: %s", err)
	}

	composerVersion, err := parseComposerVersion(string(output))
	if err != nil {
		return err
	}

	minimumVersion := goVersion.Must(goVersion.NewVersion(composerVersionMinimum))
	if composerVersion.LessThan(minimumVersion) {
		return fmt.Errorf("composer %s is too old, version %s or newer is required",
			composerVersion, composerVersionMinimum)
	}

	return nil
}

// Run installs plugin dependencies by running composer in the project
// directory, blocking until it finishes or the configured timeout expires.
func Run(installCtx *InstallCtx, cliOpts *config.CliOpts) error {
	composerOpts := cliOpts.Composer
	if composerOpts == nil {
		composerOpts = &config.ComposerOpts{}
	}
	execName := composerOpts.Exec
	if execName == "" {
		execName = "composer"
	}

	if err := checkComposer(execName); err != nil {
		return err
	}

	timeout := 10 * time.Minute
	if composerOpts.Timeout != "" {
		parsedTimeout, err := time.ParseDuration(composerOpts.Timeout)
		if err != nil {
			return fmt.Errorf("invalid composer timeout %q: %s",
				composerOpts.Timeout, err)
		}
		timeout = parsedTimeout
	}

	subcommand := "install"
	if installCtx.Update {
		subcommand = "update"
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Infof("Running %s %s in %s", execName, subcommand, installCtx.ProjectDir)
	cmd := exec.CommandContext(ctx, execName, subcommand, "--no-interaction")
	err := util.RunCommand(cmd, installCtx.ProjectDir, installCtx.Verbose)
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("composer %s timed out after %s", subcommand, timeout)
	}
	if err != nil {
		return fmt.Errorf("composer %s failed: %s", subcommand, err)
	}

	log.Infof("Dependencies are installed.")

	return nil
}

//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/magefile/mage/sh"
)

const (
	goPackageName = "github.com/wpforge/wpforge/cli"

	packagePath = "./cli"

	asmflags = "all=-trimpath=${PWD}"
	gcflags  = "all=-trimpath=${PWD}"
)

var (
	ldflags = []string{
		"-X ${PACKAGE}/version.gitTag=${GIT_TAG}",
		"-X ${PACKAGE}/version.gitCommit=${GIT_COMMIT}",
		"-X ${PACKAGE}/version.versionLabel=${VERSION_LABEL}",
		"-X ${PACKAGE}/configure.defaultConfigPath=${CONFIG_PATH}",
	}

	goExecutableName = "go"
	executableName   = "wpforge"
)

func init() {
	if specifiedGoExe := os.Getenv("GOEXE"); specifiedGoExe != "" {
		goExecutableName = specifiedGoExe
	}
}

// getBuildEnv returns a map of environment variables for the build.
func getBuildEnv() map[string]string {
	var err error

	var currentDir string
	var gitTag string
	var gitCommit string

	if currentDir, err = os.Getwd(); err != nil {
		fmt.Printf("Failed to get current directory: %s\n", err)
	}

	if _, err = os.Stat(".git"); err == nil {
		gitTag, _ = sh.Output("git", "describe", "--tags", "--abbrev=0")
		gitCommit, _ = sh.Output("git", "rev-parse", "--short", "HEAD")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "/etc/wpforge/wpforge.yaml"
	}

	return map[string]string{
		"PACKAGE":       goPackageName,
		"GIT_TAG":       gitTag,
		"GIT_COMMIT":    gitCommit,
		"VERSION_LABEL": os.Getenv("VERSION_LABEL"),
		"CONFIG_PATH":   configPath,
		"PWD":           currentDir,
	}
}

// Build builds the wpforge executable.
func Build() error {
	fmt.Println("Building wpforge...")

	return sh.RunWith(
		getBuildEnv(), goExecutableName, "build",
		"-o", executableName,
		"-ldflags", strings.Join(ldflags, " "),
		"-asmflags", asmflags,
		"-gcflags", gcflags,
		packagePath,
	)
}

// Lint runs the code style checks.
func Lint() error {
	fmt.Println("Running lint...")

	return sh.RunV("golangci-lint", "run", "./cli/...")
}

// Unit runs unit tests.
func Unit() error {
	fmt.Println("Running unit tests...")

	return sh.RunV(goExecutableName, "test", "./cli/...")
}

// Clean removes build artifacts.
func Clean() {
	fmt.Println("Cleaning...")

	os.Remove(executableName)
}

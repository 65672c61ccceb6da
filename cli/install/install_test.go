package install

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wpforge/wpforge/cli/config"
)

func TestParseComposerVersion(t *testing.T) {
	output := "Composer version 2.7.1 2024-02-09 15:26:28\n"
	composerVersion, err := parseComposerVersion(output)
	require.NoError(t, err)
	assert.Equal(t, "2.7.1", composerVersion.String())
}

func TestParseComposerVersionGarbage(t *testing.T) {
	_, err := parseComposerVersion("bash: composer: command not found\n")
	require.Error(t, err)
}

func TestRunMissingComposer(t *testing.T) {
	installCtx := InstallCtx{ProjectDir: t.TempDir()}
	cliOpts := &config.CliOpts{
		Composer: &config.ComposerOpts{Exec: "definitely-no-such-composer"},
	}

	require.Error(t, Run(&installCtx, cliOpts))
}

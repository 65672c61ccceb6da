package create

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wpforge/wpforge/cli/config"
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/scaffold"
)

// writeDemoTemplate lays out a minimal template exercising entrypoint
// renames, marker renames and token substitution.
func writeDemoTemplate(t *testing.T, templatesDir string) {
	t.Helper()

	templateDir := filepath.Join(templatesDir, "demo")
	require.NoError(t, os.Mkdir(templateDir, 0o755))

	files := map[string]string{
		"cli.stub":        "#!/usr/bin/env php\n// {{slug}}\n",
		"plugin.php.stub": "<?php // {{pluginName}} by {{authorName}}\n",
		"readme.stub":     "{{name}} under {{license}}\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(templateDir, name),
			[]byte(content), 0o644))
	}
}

func silentCreateCtx(workDir string) create_ctx.CreateCtx {
	return create_ctx.CreateCtx{
		PluginName: "Demo Plugin",
		Slug:       "demo-plugin",
		WorkDir:    workDir,
		SilentMode: true,
		VarsFromCli: []string{
			"authorName=Jane",
			"authorEmail=jane@example.com",
		},
	}
}

func TestFillCtx(t *testing.T) {
	cliOpts := &config.CliOpts{
		Templates: []config.TemplateOpts{
			{Path: "/etc/wpforge/templates"},
			{Path: "/opt/templates"},
		},
	}
	createCtx := create_ctx.CreateCtx{PluginName: "Demo Plugin"}

	require.NoError(t, FillCtx(cliOpts, &createCtx, []string{"demo"}))

	assert.Equal(t, []string{"/etc/wpforge/templates", "/opt/templates"},
		createCtx.TemplateSearchPaths)
	assert.Equal(t, "demo", createCtx.TemplateName)
	assert.Equal(t, "demo-plugin", createCtx.Slug)
	assert.NotEmpty(t, createCtx.WorkDir)
}

func TestCreateEndToEnd(t *testing.T) {
	templatesDir := t.TempDir()
	writeDemoTemplate(t, templatesDir)
	workDir := t.TempDir()

	createCtx := silentCreateCtx(workDir)
	createCtx.TemplateName = "demo"
	createCtx.TemplateSearchPaths = []string{templatesDir}

	require.NoError(t, Run(&createCtx))

	projectDir := filepath.Join(workDir, "demo-plugin")
	require.DirExists(t, projectDir)

	cliEntry := filepath.Join(projectDir, "demo-plugin")
	fileInfo, err := os.Stat(cliEntry)
	require.NoError(t, err)
	assert.NotZero(t, fileInfo.Mode().Perm()&0o100, "CLI entrypoint must be executable")

	content, err := os.ReadFile(cliEntry)
	require.NoError(t, err)
	assert.Equal(t, "#!/usr/bin/env php\n// demo-plugin\n", string(content))

	content, err = os.ReadFile(filepath.Join(projectDir, "demo-plugin.php"))
	require.NoError(t, err)
	assert.Equal(t, "<?php // Demo Plugin by Jane\n", string(content))

	content, err = os.ReadFile(filepath.Join(projectDir, "readme"))
	require.NoError(t, err)
	assert.Equal(t, "Demo Plugin under GPL-2.0-or-later\n", string(content))

	for _, workingDir := range scaffold.WorkingDirs {
		assert.FileExists(t,
			filepath.Join(projectDir, workingDir, scaffold.GitKeepFileName))
	}

	// No stray marker files survive.
	err = filepath.Walk(projectDir, func(path string, _ os.FileInfo, err error) error {
		require.NoError(t, err)
		assert.NotContains(t, filepath.Base(path), scaffold.MarkerSuffix)
		return nil
	})
	require.NoError(t, err)
}

func TestCreateBuiltinTemplate(t *testing.T) {
	workDir := t.TempDir()

	createCtx := silentCreateCtx(workDir)
	createCtx.TemplateName = "plugin"

	require.NoError(t, Run(&createCtx))

	projectDir := filepath.Join(workDir, "demo-plugin")
	assert.FileExists(t, filepath.Join(projectDir, "demo-plugin.php"))
	assert.FileExists(t, filepath.Join(projectDir, "composer.json"))
	assert.FileExists(t, filepath.Join(projectDir, "src", "Plugin.php"))

	content, err := os.ReadFile(filepath.Join(projectDir, "composer.json"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"demo-plugin/demo-plugin"`)
	assert.NotContains(t, string(content), "{{")
}

func TestCreateExistingDirNoForce(t *testing.T) {
	templatesDir := t.TempDir()
	writeDemoTemplate(t, templatesDir)
	workDir := t.TempDir()

	projectDir := filepath.Join(workDir, "demo-plugin")
	require.NoError(t, os.Mkdir(projectDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "keep.txt"),
		[]byte("untouched\n"), 0o644))

	createCtx := silentCreateCtx(workDir)
	createCtx.TemplateName = "demo"
	createCtx.TemplateSearchPaths = []string{templatesDir}

	err := Run(&createCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// The existing directory is untouched.
	assert.FileExists(t, filepath.Join(projectDir, "keep.txt"))
	assert.NoFileExists(t, filepath.Join(projectDir, "readme"))
}

func TestCreateExistingDirForce(t *testing.T) {
	templatesDir := t.TempDir()
	writeDemoTemplate(t, templatesDir)
	workDir := t.TempDir()

	projectDir := filepath.Join(workDir, "demo-plugin")
	require.NoError(t, os.Mkdir(projectDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "stale.txt"),
		[]byte("old\n"), 0o644))

	createCtx := silentCreateCtx(workDir)
	createCtx.TemplateName = "demo"
	createCtx.TemplateSearchPaths = []string{templatesDir}
	createCtx.ForceMode = true

	require.NoError(t, Run(&createCtx))

	assert.FileExists(t, filepath.Join(projectDir, "readme"))
	assert.NoFileExists(t, filepath.Join(projectDir, "stale.txt"))
}

func TestCreateSlugVarOverrideRejected(t *testing.T) {
	templatesDir := t.TempDir()
	writeDemoTemplate(t, templatesDir)
	workDir := t.TempDir()

	createCtx := silentCreateCtx(workDir)
	createCtx.TemplateName = "demo"
	createCtx.TemplateSearchPaths = []string{templatesDir}
	createCtx.VarsFromCli = append(createCtx.VarsFromCli, "slug=custom")

	err := Run(&createCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variable")

	// Nothing is materialized, under either name.
	assert.NoDirExists(t, filepath.Join(workDir, "demo-plugin"))
	assert.NoDirExists(t, filepath.Join(workDir, "custom"))
}

func TestCreateMissingTemplateLeavesNoTrace(t *testing.T) {
	workDir := t.TempDir()

	createCtx := silentCreateCtx(workDir)
	createCtx.TemplateName = "no_such_template"
	createCtx.TemplateSearchPaths = []string{t.TempDir()}

	require.Error(t, Run(&createCtx))

	assert.NoDirExists(t, filepath.Join(workDir, "demo-plugin"))
}

func TestCreateOverlay(t *testing.T) {
	workDir := t.TempDir()
	stubsDir := filepath.Join(workDir, "stubs")
	require.NoError(t, os.Mkdir(stubsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(stubsDir, "plugin.php.stub"),
		[]byte("<?php // {{pluginName}}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "existing.txt"),
		[]byte("kept\n"), 0o644))

	createCtx := silentCreateCtx(workDir)
	createCtx.Overlay = true
	createCtx.CleanupPaths = []string{"stubs"}

	require.NoError(t, Run(&createCtx))

	content, err := os.ReadFile(filepath.Join(workDir, "demo-plugin.php"))
	require.NoError(t, err)
	assert.Equal(t, "<?php // Demo Plugin\n", string(content))

	// Pre-existing files survive, stub sources do not.
	assert.FileExists(t, filepath.Join(workDir, "existing.txt"))
	assert.NoDirExists(t, stubsDir)
}

func TestCheckCtx(t *testing.T) {
	require.Error(t, Run(&create_ctx.CreateCtx{TemplateName: "demo"}))
	require.Error(t, Run(&create_ctx.CreateCtx{PluginName: "Demo Plugin"}))
}

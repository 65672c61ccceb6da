package steps

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"

	"github.com/apex/log"
	"github.com/wpforge/wpforge/cli/create/builtin_templates"
	create_ctx "github.com/wpforge/wpforge/cli/create/context"
	"github.com/wpforge/wpforge/cli/scaffold"
	"github.com/wpforge/wpforge/cli/util"
)

// CopyTemplate represents the template copy step.
type CopyTemplate struct{}

// Run copies/extracts the template to the staging directory. Template name
// lookup order: configured search paths (a directory or a tgz archive with
// the template name), then built-in templates. The overlay flow uses an
// explicit stub directory instead.
func (CopyTemplate) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if createCtx.Overlay {
		srcDir := createCtx.TemplateDir
		if srcDir == "" {
			srcDir = filepath.Join(createCtx.WorkDir, "stubs")
		}
		if !util.IsDir(srcDir) {
			return fmt.Errorf("stub template directory %q does not exist", srcDir)
		}
		log.Infof("Using template from %s", srcDir)
		return scaffold.Copy(srcDir, templateCtx.AppPath)
	}

	templateName := createCtx.TemplateName

	for _, templatesLocation := range createCtx.TemplateSearchPaths {
		templatePath := filepath.Join(templatesLocation, templateName)
		if util.IsDir(templatePath) {
			log.Infof("Using template from %s", templatePath)
			return scaffold.Copy(templatePath, templateCtx.AppPath)
		}

		archivesToCheck := [2]string{
			templatePath + ".tgz",
			templatePath + ".tar.gz",
		}
		for _, archivePath := range archivesToCheck {
			if util.IsRegularFile(archivePath) {
				log.Infof("Using template from %s", archivePath)
				if err := util.ExtractTarGz(archivePath, templateCtx.AppPath); err != nil {
					return fmt.Errorf("template archive extraction failed: %s", err)
				}
				return nil
			}
		}
	}

	if slices.Contains(builtin_templates.Names[:], templateName) {
		log.Infof("Using built-in template %q", templateName)
		return scaffold.CopyFS(builtin_templates.TemplatesFs,
			path.Join("templates", templateName), templateCtx.AppPath)
	}

	return fmt.Errorf("template %q is not found", templateName)
}

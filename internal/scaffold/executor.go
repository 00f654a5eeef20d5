// Package scaffold executes a frozen plan against the target
// directory: structures first, plain files next, the package manifest
// last so its sections reflect what the run actually laid down. Every
// write is create-only; an existing file is never modified.
package scaffold

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/SnacktimePro/skello/internal/license"
	"github.com/SnacktimePro/skello/internal/model"
	"github.com/SnacktimePro/skello/internal/plan"
	"github.com/SnacktimePro/skello/internal/report"
)

// Run executes every artifact in plan order and records the outcome in
// rep. A failed artifact is reported and the run moves on; nothing
// here aborts the whole scaffold.
func Run(p *plan.Plan, rep *report.Report) {
	for _, name := range p.Skips {
		rep.AddSkipped(name)
	}
	for _, note := range p.Notes {
		rep.AddNote(note)
	}
	warnUnknownLicense(p, rep)

	now := time.Now()
	for _, art := range p.Artifacts() {
		var created bool
		var err error
		switch art.Kind {
		case plan.ArtifactStructure:
			created, err = createStructure(p, art.Structure)
		case plan.ArtifactFile:
			created, err = createFileArtifact(p, art.File, now)
		}
		switch {
		case err != nil:
			rep.AddFailed(art.Name, err)
		case created:
			rep.AddCreated(art.Name)
		default:
			rep.AddSkipped(art.Name)
		}
	}
}

// warnUnknownLicense surfaces a request for a license the catalog does
// not carry. The run still proceeds with the default license.
func warnUnknownLicense(p *plan.Plan, rep *report.Report) {
	req, ok := p.Files[model.KindLicense]
	if !ok {
		return
	}
	key := req.Options["type"]
	if key == "" {
		key = p.Defaults.License
	}
	if key == "" {
		return
	}
	if _, known := license.Lookup(key); !known {
		rep.AddWarning(fmt.Sprintf("unknown license type %q, using %s", key, license.DefaultKey))
	}
}

// createFileArtifact renders one planned file and writes it
// create-only into the target directory.
func createFileArtifact(p *plan.Plan, req model.FileRequest, now time.Time) (bool, error) {
	content, err := fileContent(p, req, now)
	if err != nil {
		return false, err
	}
	return createFile(filepath.Join(p.Dir, req.Filename()), []byte(content))
}

func fileContent(p *plan.Plan, req model.FileRequest, now time.Time) (string, error) {
	switch req.Kind {
	case model.KindLicense:
		info := license.Resolve(p.LicenseKey())
		return render(info.Template, map[string]string{
			"project_name": p.ProjectName,
			"current_year": strconv.Itoa(now.Year()),
			"author_name":  p.LicenseAuthor(),
		})
	case model.KindRequirements:
		return render("requirements.txt.tmpl", nil)
	case model.KindPyproject:
		return render("pyproject.toml.tmpl", pyprojectVars(p))
	case model.KindGitignore:
		return render("gitignore.tmpl", nil)
	case model.KindReadme:
		return render("README.md.tmpl", map[string]string{
			"project_name":    p.ProjectName,
			"project_title":   p.ProjectTitle,
			"project_package": p.ProjectPackage,
		})
	case model.KindChangelog:
		return render("CHANGELOG.md.tmpl", map[string]string{
			"project_name":       p.ProjectName,
			"current_date":       now.Format("2006-01-02"),
			"changelog_features": changelogFeatures(p),
		})
	}
	return "", fmt.Errorf("no template for file kind %q", req.Kind)
}

// changelogFeatures lists what this run adds, in the order entries
// appear in the changelog. The dependency manifest is never listed;
// it holds no content worth announcing.
func changelogFeatures(p *plan.Plan) string {
	var features []string
	if p.HasFile(model.KindReadme) {
		features = append(features, "-\tAdded README.md documentation")
	}
	if p.HasFile(model.KindLicense) {
		features = append(features, "-\tAdded LICENSE file")
	}
	if p.CreatesSrc() {
		features = append(features,
			"-\tAdded src/ package structure",
			"-\tAdded main.py entry point")
	}
	if p.CreatesTests() {
		features = append(features, "-\tAdded tests/ directory with basic test structure")
	}
	if p.HasFile(model.KindPyproject) {
		features = append(features, "-\tAdded pyproject.toml configuration")
	}
	if p.HasFile(model.KindGitignore) {
		features = append(features, "-\tAdded .gitignore file")
	}
	if len(features) == 0 {
		return ""
	}
	return "\n" + strings.Join(features, "\n")
}

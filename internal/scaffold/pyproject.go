package scaffold

import (
	"fmt"
	"strings"

	"github.com/SnacktimePro/skello/internal/license"
	"github.com/SnacktimePro/skello/internal/model"
	"github.com/SnacktimePro/skello/internal/plan"
)

const pytestSection = `[tool.pytest.ini_options]
testpaths = ["tests"]
python_files = ["test_*.py", "*_test.py"]`

// pyprojectVars builds the conditional manifest sections from the
// final plan state. The manifest renders last, so "has a README"
// means present on disk before the run or created by this run.
func pyprojectVars(p *plan.Plan) map[string]string {
	vars := map[string]string{
		"project_name":       p.ProjectName,
		"license_classifier": license.Classifier(manifestLicenseKey(p)),
	}

	if p.Snapshot.FileExists("README.md") || p.HasFile(model.KindReadme) {
		vars["readme_section"] = `readme = "README.md"`
	} else {
		vars["readme_section"] = `# readme = "README.md"  # Uncomment when you add a README`
	}

	if p.Snapshot.FileExists("LICENSE") || p.HasFile(model.KindLicense) {
		vars["license_section"] = `license = {file = "LICENSE"}`
	} else {
		vars["license_section"] = `# license = {file = "LICENSE"}  # Uncomment when you add a LICENSE`
	}

	hasTests := p.Snapshot.HasTests() || p.CreatesTests()
	vars["pytest_section"] = commentUnless(pytestSection, hasTests)

	build := fmt.Sprintf("[tool.hatch.build.targets.wheel]\npackages = [\"src/%s\"]", p.ProjectPackage)
	hasSrc := p.Snapshot.HasSrcLayout() || p.CreatesSrc()
	vars["build_section"] = commentUnless(build, hasSrc)

	return vars
}

// manifestLicenseKey picks the classifier source: an explicit or
// configured license request wins, otherwise the target directory is
// probed for an existing license file.
func manifestLicenseKey(p *plan.Plan) string {
	if key := p.LicenseKey(); key != "" {
		return key
	}
	return license.Detect(p.Dir)
}

// commentUnless comments out every line of a section that does not
// apply to this project, keeping it visible in the manifest for later.
func commentUnless(section string, active bool) string {
	if active {
		return section
	}
	lines := strings.Split(section, "\n")
	for i, line := range lines {
		lines[i] = "# " + line
	}
	return strings.Join(lines, "\n")
}

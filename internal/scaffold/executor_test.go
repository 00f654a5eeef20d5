package scaffold

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SnacktimePro/skello/internal/config"
	"github.com/SnacktimePro/skello/internal/model"
	"github.com/SnacktimePro/skello/internal/plan"
	"github.com/SnacktimePro/skello/internal/report"
	"github.com/SnacktimePro/skello/internal/snapshot"
)

func take(t *testing.T, dir string) *snapshot.Snapshot {
	t.Helper()
	snap, err := snapshot.Take(dir)
	require.NoError(t, err)
	return snap
}

func parse(t *testing.T, tokens ...string) []model.Request {
	t.Helper()
	requests, warnings := model.ParseTokens(tokens)
	require.Empty(t, warnings)
	return requests
}

func runTokens(t *testing.T, dir string, defaults config.Defaults, tokens ...string) (*plan.Plan, *report.Report) {
	t.Helper()
	p := plan.Build(take(t, dir), parse(t, tokens...), defaults, plan.Options{})
	var rep report.Report
	Run(p, &rep)
	return p, &rep
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

type pyprojectDoc struct {
	Project struct {
		Name        string   `toml:"name"`
		Readme      string   `toml:"readme"`
		Classifiers []string `toml:"classifiers"`
	} `toml:"project"`
	Tool struct {
		Pytest struct {
			IniOptions struct {
				Testpaths []string `toml:"testpaths"`
			} `toml:"ini_options"`
		} `toml:"pytest"`
		Hatch struct {
			Build struct {
				Targets struct {
					Wheel struct {
						Packages []string `toml:"packages"`
					} `toml:"wheel"`
				} `toml:"targets"`
			} `toml:"build"`
		} `toml:"hatch"`
	} `toml:"tool"`
}

func parsePyproject(t *testing.T, dir string) pyprojectDoc {
	t.Helper()
	var doc pyprojectDoc
	require.NoError(t, toml.Unmarshal([]byte(readFile(t, filepath.Join(dir, "pyproject.toml"))), &doc))
	return doc
}

func TestRunFullScaffold(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo-app")
	require.NoError(t, os.Mkdir(dir, 0o755))

	_, rep := runTokens(t, dir, config.Defaults{}, "all")

	for _, name := range []string{
		"LICENSE", "pyproject.toml", ".gitignore", "README.md", "CHANGELOG.md",
		filepath.Join("src", "demo_app", "__init__.py"),
		filepath.Join("src", "demo_app", "main.py"),
		filepath.Join("tests", "__init__.py"),
		filepath.Join("tests", "test_main.py"),
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	assert.NoFileExists(t, filepath.Join(dir, "requirements.txt"))

	assert.Contains(t, rep.Created, "full project structure")
	assert.Contains(t, rep.Created, "LICENSE")
	assert.Contains(t, rep.Created, "pyproject.toml")
	assert.NotContains(t, rep.Created, "requirements.txt")
	assert.Contains(t, rep.Notes, "prioritizing pyproject.toml over requirements.txt")
	assert.Empty(t, rep.Failed)
}

func TestRunManifestReflectsFinalState(t *testing.T) {
	dir := t.TempDir()
	_, _ = runTokens(t, dir, config.Defaults{}, "p", "md", "full")

	doc := parsePyproject(t, dir)
	pkg := filepath.Base(dir)
	assert.Equal(t, filepath.Base(dir), doc.Project.Name)
	assert.Equal(t, "README.md", doc.Project.Readme)
	assert.Contains(t, doc.Project.Classifiers, "License :: OSI Approved :: MIT License")
	assert.Equal(t, []string{"tests"}, doc.Tool.Pytest.IniOptions.Testpaths)
	assert.Equal(t, []string{"src/" + model.PackageName(pkg)}, doc.Tool.Hatch.Build.Targets.Wheel.Packages)
}

func TestRunManifestAloneCommentsSections(t *testing.T) {
	dir := t.TempDir()
	_, _ = runTokens(t, dir, config.Defaults{}, "p")

	content := readFile(t, filepath.Join(dir, "pyproject.toml"))
	assert.Contains(t, content, `# readme = "README.md"  # Uncomment when you add a README`)
	assert.Contains(t, content, `# license = {file = "LICENSE"}  # Uncomment when you add a LICENSE`)
	assert.Contains(t, content, "# [tool.pytest.ini_options]")
	assert.Contains(t, content, "# [tool.hatch.build.targets.wheel]")

	doc := parsePyproject(t, dir)
	assert.Empty(t, doc.Project.Readme)
	assert.Empty(t, doc.Tool.Pytest.IniOptions.Testpaths)
}

func TestRunManifestSeesFilesAlreadyOnDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# hi\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tests"), 0o755))

	_, _ = runTokens(t, dir, config.Defaults{}, "p")

	content := readFile(t, filepath.Join(dir, "pyproject.toml"))
	assert.Contains(t, content, "readme = \"README.md\"\n")
	assert.NotContains(t, content, `# readme =`)
	assert.Contains(t, content, "[tool.pytest.ini_options]\ntestpaths")
}

func TestRunManifestClassifierFromDetectedLicense(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "LICENSE"), []byte("Apache License, Version 2.0"), 0o644))

	_, _ = runTokens(t, dir, config.Defaults{}, "p")

	doc := parsePyproject(t, dir)
	assert.Contains(t, doc.Project.Classifiers, "License :: OSI Approved :: Apache Software License")
}

func TestRunLicenseRendering(t *testing.T) {
	dir := t.TempDir()
	_, rep := runTokens(t, dir, config.Defaults{}, "l:apache:Jane Smith")

	content := readFile(t, filepath.Join(dir, "LICENSE"))
	assert.Contains(t, content, "Apache License")
	assert.Contains(t, content, "Jane Smith")
	assert.Contains(t, content, strconv.Itoa(time.Now().Year()))
	assert.Empty(t, rep.Warnings)
}

func TestRunUnknownLicenseFallsBack(t *testing.T) {
	dir := t.TempDir()
	_, rep := runTokens(t, dir, config.Defaults{}, "l:wtfpl")

	content := readFile(t, filepath.Join(dir, "LICENSE"))
	assert.Contains(t, content, "MIT License")
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], `unknown license type "wtfpl"`)
}

func TestRunLicenseAuthorFromConfig(t *testing.T) {
	dir := t.TempDir()
	_, _ = runTokens(t, dir, config.Defaults{Author: "Config Author", License: "bsd"}, "l")

	content := readFile(t, filepath.Join(dir, "LICENSE"))
	assert.Contains(t, content, "Config Author")
	assert.Contains(t, content, "BSD")
}

func TestRunThreeFilesEmptyDir(t *testing.T) {
	dir := t.TempDir()
	_, rep := runTokens(t, dir, config.Defaults{}, "g", "md", "l:mit:Alice")

	assert.ElementsMatch(t, []string{".gitignore", "README.md", "LICENSE"}, rep.Created)
	assert.Empty(t, rep.Skipped)
	assert.NoFileExists(t, filepath.Join(dir, "pyproject.toml"))
	assert.Contains(t, readFile(t, filepath.Join(dir, "LICENSE")), "Alice")
}

func TestRunChangelogSkipsExistingReadme(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# mine\n"), 0o644))

	_, rep := runTokens(t, dir, config.Defaults{}, "md", "ch")

	assert.Equal(t, []string{"CHANGELOG.md"}, rep.Created)
	assert.Contains(t, rep.Skipped, "README.md")
	// The readme was not created this run, so the changelog must not
	// announce it.
	assert.NotContains(t, readFile(t, filepath.Join(dir, "CHANGELOG.md")), "README.md")
	assert.Equal(t, "# mine\n", readFile(t, filepath.Join(dir, "README.md")))
}

func TestRunChangelogFeatures(t *testing.T) {
	dir := t.TempDir()
	_, _ = runTokens(t, dir, config.Defaults{}, "ch", "full", "p", "md")

	content := readFile(t, filepath.Join(dir, "CHANGELOG.md"))
	assert.Contains(t, content, "-\tAdded README.md documentation")
	assert.Contains(t, content, "-\tAdded src/ package structure")
	assert.Contains(t, content, "-\tAdded main.py entry point")
	assert.Contains(t, content, "-\tAdded tests/ directory with basic test structure")
	assert.Contains(t, content, "-\tAdded pyproject.toml configuration")
	assert.Contains(t, content, time.Now().Format("2006-01-02"))
	assert.NotContains(t, content, "requirements")
}

func TestRunChangelogAloneListsNoFeatures(t *testing.T) {
	dir := t.TempDir()
	_, _ = runTokens(t, dir, config.Defaults{}, "ch")

	content := readFile(t, filepath.Join(dir, "CHANGELOG.md"))
	assert.Contains(t, content, "- Initial project scaffolding\n")
	assert.NotContains(t, content, "-\tAdded")
}

func TestRunIdempotent(t *testing.T) {
	dir := t.TempDir()
	_, first := runTokens(t, dir, config.Defaults{}, "all")
	require.Empty(t, first.Failed)

	licenseBefore := readFile(t, filepath.Join(dir, "LICENSE"))

	_, second := runTokens(t, dir, config.Defaults{}, "all")
	assert.Empty(t, second.Created)
	assert.Empty(t, second.Failed)
	assert.Contains(t, second.Skipped, "full project structure")
	assert.Contains(t, second.Skipped, "LICENSE")
	assert.Equal(t, licenseBefore, readFile(t, filepath.Join(dir, "LICENSE")))
}

func TestRunNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	snap := take(t, dir)

	// File appears between snapshot and execution; the create-only
	// write still refuses to touch it.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "LICENSE"), []byte("keep me"), 0o644))

	p := plan.Build(snap, parse(t, "l"), config.Defaults{}, plan.Options{})
	var rep report.Report
	Run(p, &rep)

	assert.Equal(t, "keep me", readFile(t, filepath.Join(dir, "LICENSE")))
	assert.Contains(t, rep.Skipped, "LICENSE")
	assert.Empty(t, rep.Created)
	assert.Empty(t, rep.Failed)
}

func TestRunStructureSentinelSkips(t *testing.T) {
	dir := t.TempDir()
	pkg := model.PackageName(filepath.Base(dir))
	pkgDir := filepath.Join(dir, "src", pkg)
	require.NoError(t, os.MkdirAll(pkgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "main.py"), []byte("print('mine')\n"), 0o644))

	_, rep := runTokens(t, dir, config.Defaults{}, "full")

	assert.Contains(t, rep.Created, "full project structure")
	assert.NotContains(t, rep.Skipped, "full project structure")
	assert.Equal(t, "print('mine')\n", readFile(t, filepath.Join(pkgDir, "main.py")))
	assert.FileExists(t, filepath.Join(dir, "tests", "test_main.py"))
}

func TestRunMainStructureAlone(t *testing.T) {
	dir := t.TempDir()
	_, rep := runTokens(t, dir, config.Defaults{}, "m")

	assert.Contains(t, rep.Created, "src/main.py structure")
	pkg := model.PackageName(filepath.Base(dir))
	assert.FileExists(t, filepath.Join(dir, "src", pkg, "main.py"))
	assert.NoFileExists(t, filepath.Join(dir, "tests", "test_main.py"))

	content := readFile(t, filepath.Join(dir, "src", pkg, "main.py"))
	assert.NotContains(t, content, "${")
}

func TestRunFailureDoesNotAbort(t *testing.T) {
	dir := t.TempDir()
	_, rep := runTokens(t, dir, config.Defaults{}, "r:missing/requirements.txt", "md")

	require.Len(t, rep.Failed, 1)
	assert.Equal(t, "missing/requirements.txt", rep.Failed[0].Name)
	assert.Contains(t, rep.Created, "README.md")
}

func TestRunProjectNameOverride(t *testing.T) {
	dir := t.TempDir()
	p := plan.Build(take(t, dir), parse(t, "all"), config.Defaults{}, plan.Options{Name: "My Cool-Project"})
	var rep report.Report
	Run(p, &rep)
	require.Empty(t, rep.Failed)

	assert.FileExists(t, filepath.Join(dir, "src", "my_cool_project", "main.py"))

	doc := parsePyproject(t, dir)
	assert.Equal(t, "My Cool-Project", doc.Project.Name)
	assert.Equal(t, []string{"src/my_cool_project"}, doc.Tool.Hatch.Build.Targets.Wheel.Packages)

	readme := readFile(t, filepath.Join(dir, "README.md"))
	assert.Contains(t, readme, "My Cool Project")
}

func TestRunTestModuleImportsPackage(t *testing.T) {
	dir := t.TempDir()
	_, _ = runTokens(t, dir, config.Defaults{}, "full")

	pkg := model.PackageName(filepath.Base(dir))
	content := readFile(t, filepath.Join(dir, "tests", "test_main.py"))
	assert.Contains(t, content, "from "+pkg+" import main")
	assert.NotContains(t, content, "${project_package}")
}

func TestRunGitignoreKeepsLiteralDollar(t *testing.T) {
	dir := t.TempDir()
	_, _ = runTokens(t, dir, config.Defaults{}, "g")

	content := readFile(t, filepath.Join(dir, ".gitignore"))
	assert.Contains(t, content, "*$py.class")
}

func TestRunRequirementsKeptWithoutManifest(t *testing.T) {
	dir := t.TempDir()
	_, rep := runTokens(t, dir, config.Defaults{}, "r")

	assert.FileExists(t, filepath.Join(dir, "requirements.txt"))
	assert.Contains(t, rep.Created, "requirements.txt")
	assert.Empty(t, rep.Notes)
}

func TestRunCustomFilenames(t *testing.T) {
	dir := t.TempDir()
	_, rep := runTokens(t, dir, config.Defaults{}, "r:deps.txt", "l:mit:Jane:NOTICE")

	assert.FileExists(t, filepath.Join(dir, "deps.txt"))
	assert.FileExists(t, filepath.Join(dir, "NOTICE"))
	assert.ElementsMatch(t, []string{"deps.txt", "NOTICE"}, rep.Created)

	manifest := strings.ToUpper(readFile(t, filepath.Join(dir, "NOTICE")))
	assert.Contains(t, manifest, "MIT")
}

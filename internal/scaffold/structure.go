package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SnacktimePro/skello/internal/model"
	"github.com/SnacktimePro/skello/internal/plan"
)

// createStructure dispatches one structure artifact. The returned bool
// reports whether anything was laid out; false with a nil error means
// the structure's sentinel files already existed.
func createStructure(p *plan.Plan, kind model.StructureKind) (bool, error) {
	switch kind {
	case model.StructureMain:
		return createMainStructure(p)
	case model.StructureFull:
		return createFullStructure(p)
	}
	return false, fmt.Errorf("unknown structure kind %q", kind)
}

// createMainStructure lays out src/<package>/ with __init__.py and a
// rendered main.py. src/<package>/main.py is the sentinel: when it
// exists the whole structure is treated as present.
func createMainStructure(p *plan.Plan) (bool, error) {
	packageDir := filepath.Join(p.Dir, "src", p.ProjectPackage)
	mainFile := filepath.Join(packageDir, "main.py")

	if _, err := os.Stat(mainFile); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(packageDir, 0o755); err != nil {
		return false, fmt.Errorf("create package directory: %w", err)
	}
	if err := touch(filepath.Join(packageDir, "__init__.py")); err != nil {
		return false, err
	}

	content, err := render("main.py.tmpl", map[string]string{
		"project_name": p.ProjectName,
	})
	if err != nil {
		return false, err
	}
	if _, err := createFile(mainFile, []byte(content)); err != nil {
		return false, fmt.Errorf("write main.py: %w", err)
	}
	return true, nil
}

// createFullStructure ensures the main structure, then adds tests/
// with __init__.py and a starter test module. tests/test_main.py is
// the sentinel for the tests half.
func createFullStructure(p *plan.Plan) (bool, error) {
	createdMain, err := createMainStructure(p)
	if err != nil {
		return false, err
	}

	testsDir := filepath.Join(p.Dir, "tests")
	testFile := filepath.Join(testsDir, "test_main.py")

	if _, err := os.Stat(testFile); err == nil {
		return createdMain, nil
	}

	if err := os.MkdirAll(testsDir, 0o755); err != nil {
		return createdMain, fmt.Errorf("create tests directory: %w", err)
	}
	if err := touch(filepath.Join(testsDir, "__init__.py")); err != nil {
		return createdMain, err
	}

	content, err := render("test_main.py.tmpl", map[string]string{
		"project_package": p.ProjectPackage,
	})
	if err != nil {
		return createdMain, err
	}
	if _, err := createFile(testFile, []byte(content)); err != nil {
		return createdMain, fmt.Errorf("write test_main.py: %w", err)
	}
	return true, nil
}

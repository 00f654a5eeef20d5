// Package model defines the file kinds, structure kinds, and creation
// requests that drive a scaffold run.
package model

type FileKind string

const (
	KindLicense      FileKind = "license"
	KindRequirements FileKind = "requirements"
	KindPyproject    FileKind = "pyproject"
	KindGitignore    FileKind = "gitignore"
	KindReadme       FileKind = "readme"
	KindChangelog    FileKind = "changelog"
)

type StructureKind string

const (
	StructureMain StructureKind = "main"
	StructureFull StructureKind = "full"
)

// AllFileKinds lists every file kind in the order the catch-all token
// expands them.
var AllFileKinds = []FileKind{
	KindLicense,
	KindRequirements,
	KindPyproject,
	KindGitignore,
	KindReadme,
	KindChangelog,
}

var fileKindAliases = map[string]FileKind{
	"l":            KindLicense,
	"lic":          KindLicense,
	"license":      KindLicense,
	"r":            KindRequirements,
	"req":          KindRequirements,
	"requirements": KindRequirements,
	"p":            KindPyproject,
	"toml":         KindPyproject,
	"pyproject":    KindPyproject,
	"g":            KindGitignore,
	"git":          KindGitignore,
	"gitignore":    KindGitignore,
	"md":           KindReadme,
	"read":         KindReadme,
	"readme":       KindReadme,
	"ch":           KindChangelog,
	"log":          KindChangelog,
	"changelog":    KindChangelog,
}

var structureAliases = map[string]StructureKind{
	"m":    StructureMain,
	"main": StructureMain,
	"f":    StructureFull,
	"full": StructureFull,
}

var allAliases = map[string]bool{
	"*":   true,
	"all": true,
}

// fileOptionKeys maps each kind to its positional option keys. Kinds
// absent from the map take no options.
var fileOptionKeys = map[FileKind][]string{
	KindLicense:      {"type", "author", "filename"},
	KindRequirements: {"filename"},
}

// defaultFilenames gives the target filename each kind creates when no
// filename option overrides it. The package manifest name is fixed.
var defaultFilenames = map[FileKind]string{
	KindLicense:      "LICENSE",
	KindRequirements: "requirements.txt",
	KindPyproject:    "pyproject.toml",
	KindGitignore:    ".gitignore",
	KindReadme:       "README.md",
	KindChangelog:    "CHANGELOG.md",
}

// DefaultFilename returns the filename a kind creates by default.
func DefaultFilename(kind FileKind) string {
	return defaultFilenames[kind]
}

// OptionKeys returns the positional option keys a kind accepts.
func OptionKeys(kind FileKind) []string {
	return fileOptionKeys[kind]
}

// Package plan turns parsed creation requests and a directory snapshot
// into the immutable scaffold plan. Conflict resolution lives here and
// nowhere else.
package plan

import (
	"strings"

	"github.com/SnacktimePro/skello/internal/config"
	"github.com/SnacktimePro/skello/internal/license"
	"github.com/SnacktimePro/skello/internal/model"
	"github.com/SnacktimePro/skello/internal/snapshot"
)

const defaultAuthor = "TODO: Add your name"

// Plan is the frozen result of conflict resolution. The executor only
// reads it; nothing mutates a plan after Build returns.
type Plan struct {
	Dir            string
	ProjectName    string
	ProjectPackage string
	ProjectTitle   string

	Files      map[model.FileKind]model.FileRequest
	Structures map[model.StructureKind]bool

	Snapshot *snapshot.Snapshot
	Defaults config.Defaults

	// Skips are target filenames dropped because they already existed
	// at snapshot time. They surface as "skipped" in the run summary.
	Skips []string
	// Notes are human-readable decisions made while building the plan.
	Notes []string
}

// Options adjust how Build derives the plan.
type Options struct {
	// Name overrides the project name derived from the directory.
	Name string
}

// Build merges requests against the snapshot in four steps: derive
// identifiers, merge per kind (explicit tokens overwrite, catch-all
// expansion only fills absent kinds), drop the dependency manifest when
// the package manifest is requested or already on disk, then drop any
// request whose target filename existed at snapshot time.
func Build(snap *snapshot.Snapshot, requests []model.Request, defaults config.Defaults, opts Options) *Plan {
	name := snap.ProjectName
	if opts.Name != "" {
		name = opts.Name
	}

	files := make(map[model.FileKind]model.FileRequest)
	structures := make(map[model.StructureKind]bool)

	for _, req := range requests {
		switch req.Kind {
		case model.RequestAll:
			structures[model.StructureFull] = true
			for _, kind := range model.AllFileKinds {
				if _, ok := files[kind]; !ok {
					files[kind] = model.FileRequest{Kind: kind}
				}
			}
		case model.RequestStructure:
			structures[req.Structure] = true
		case model.RequestFile:
			files[req.File.Kind] = req.File
		}
	}

	var notes []string
	_, pyprojectRequested := files[model.KindPyproject]
	if pyprojectRequested || snap.FileExists("pyproject.toml") {
		if _, ok := files[model.KindRequirements]; ok {
			delete(files, model.KindRequirements)
			notes = append(notes, "prioritizing pyproject.toml over requirements.txt")
		}
	}

	var skips []string
	for kind, req := range files {
		if snap.FileExists(req.Filename()) {
			delete(files, kind)
			skips = append(skips, req.Filename())
		}
	}

	return &Plan{
		Dir:            snap.Dir,
		ProjectName:    name,
		ProjectPackage: model.PackageName(name),
		ProjectTitle:   model.ProjectTitle(name),
		Files:          files,
		Structures:     structures,
		Snapshot:       snap,
		Defaults:       defaults,
		Skips:          skips,
		Notes:          notes,
	}
}

// HasFile reports whether the plan creates the given file kind.
func (p *Plan) HasFile(kind model.FileKind) bool {
	_, ok := p.Files[kind]
	return ok
}

// CreatesSrc reports whether any requested structure lays out src/.
func (p *Plan) CreatesSrc() bool {
	return p.Structures[model.StructureMain] || p.Structures[model.StructureFull]
}

// CreatesTests reports whether the tests-inclusive structure was
// requested.
func (p *Plan) CreatesTests() bool {
	return p.Structures[model.StructureFull]
}

// LicenseKey resolves the license for the planned LICENSE file: the
// request's type option, then the configured default, then the catalog
// default. Empty when the plan creates no license file.
func (p *Plan) LicenseKey() string {
	req, ok := p.Files[model.KindLicense]
	if !ok {
		return ""
	}
	if t := req.Options["type"]; t != "" {
		return strings.ToLower(t)
	}
	if p.Defaults.License != "" {
		return strings.ToLower(p.Defaults.License)
	}
	return license.DefaultKey
}

// LicenseAuthor resolves the author for the planned LICENSE file: the
// request's author option, then the configured default, then a
// placeholder.
func (p *Plan) LicenseAuthor() string {
	if req, ok := p.Files[model.KindLicense]; ok {
		if a := req.Options["author"]; a != "" {
			return a
		}
	}
	if p.Defaults.Author != "" {
		return p.Defaults.Author
	}
	return defaultAuthor
}

type ArtifactKind string

const (
	ArtifactStructure ArtifactKind = "structure"
	ArtifactFile      ArtifactKind = "file"
)

// Artifact is one unit of work in execution order.
type Artifact struct {
	Kind      ArtifactKind
	Structure model.StructureKind
	File      model.FileRequest
	// Name is the label used in summaries and dry runs.
	Name string
}

// StructureLabels names structures in summaries the way users see them.
var StructureLabels = map[model.StructureKind]string{
	model.StructureMain: "src/main.py structure",
	model.StructureFull: "full project structure",
}

// Artifacts lists the plan's work in the order the executor performs
// it: structures first, plain files next, the package manifest last so
// it reflects final state.
func (p *Plan) Artifacts() []Artifact {
	var out []Artifact
	for _, s := range []model.StructureKind{model.StructureMain, model.StructureFull} {
		if p.Structures[s] {
			out = append(out, Artifact{Kind: ArtifactStructure, Structure: s, Name: StructureLabels[s]})
		}
	}
	for _, kind := range model.AllFileKinds {
		if kind == model.KindPyproject {
			continue
		}
		if req, ok := p.Files[kind]; ok {
			out = append(out, Artifact{Kind: ArtifactFile, File: req, Name: req.Filename()})
		}
	}
	if req, ok := p.Files[model.KindPyproject]; ok {
		out = append(out, Artifact{Kind: ArtifactFile, File: req, Name: req.Filename()})
	}
	return out
}

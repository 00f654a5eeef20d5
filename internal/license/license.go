// Package license is the closed catalog of supported licenses: alias to
// template and classifier lookup, plus keyword detection of a license
// already present in a directory.
package license

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultKey is the fallback license for unknown aliases and failed
// detection.
const DefaultKey = "mit"

// Info describes one catalog entry.
type Info struct {
	Key        string
	Template   string
	Classifier string
}

// catalog is ordered for user-facing listings.
var catalog = []Info{
	{Key: "mit", Template: "licenses/mit.tmpl", Classifier: "MIT License"},
	{Key: "apache", Template: "licenses/apache.tmpl", Classifier: "Apache Software License"},
	{Key: "bsd", Template: "licenses/bsd.tmpl", Classifier: "BSD License"},
	{Key: "gpl", Template: "licenses/gpl.tmpl", Classifier: "GNU General Public License v3 (GPLv3)"},
	{Key: "lgpl", Template: "licenses/lgpl.tmpl", Classifier: "GNU Lesser General Public License v3 (LGPLv3)"},
	{Key: "mpl", Template: "licenses/mpl.tmpl", Classifier: "Mozilla Public License 2.0 (MPL 2.0)"},
	{Key: "unlicense", Template: "licenses/unlicense.tmpl", Classifier: "The Unlicense (Unlicense)"},
}

var byKey = func() map[string]Info {
	m := make(map[string]Info, len(catalog))
	for _, info := range catalog {
		m[info.Key] = info
	}
	return m
}()

// detectionKeywords is scanned in order against upper-cased license
// text. Order matters: the first substring hit wins.
var detectionKeywords = []struct {
	keyword string
	key     string
}{
	{"MIT", "mit"},
	{"APACHE", "apache"},
	{"BSD", "bsd"},
	{"GPL", "gpl"},
	{"LGPL", "lgpl"},
	{"MPL", "mpl"},
	{"UNLICENSE", "unlicense"},
}

// detectionCandidates are the filenames scanned by Detect, in order.
var detectionCandidates = []string{"LICENSE", "LICENSE.txt", "LICENSE.md", "COPYING"}

// Lookup resolves a license alias case-insensitively.
func Lookup(key string) (Info, bool) {
	info, ok := byKey[strings.ToLower(key)]
	return info, ok
}

// Resolve is Lookup with the catalog's fallback: unknown aliases map to
// the default license.
func Resolve(key string) Info {
	if info, ok := Lookup(key); ok {
		return info
	}
	return byKey[DefaultKey]
}

// Classifier returns the trove classifier for a license alias, falling
// back to the default license's classifier for unknown aliases.
func Classifier(key string) string {
	return Resolve(key).Classifier
}

// Supported lists the catalog in display order.
func Supported() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Detect scans existing license files in dir for known keywords and
// returns the matching catalog key. Unreadable files are skipped; no
// match means the default license.
func Detect(dir string) string {
	for _, name := range detectionCandidates {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		content := strings.ToUpper(string(data))
		for _, entry := range detectionKeywords {
			if strings.Contains(content, entry.keyword) {
				return entry.key
			}
		}
	}
	return DefaultKey
}

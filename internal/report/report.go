// Package report collects the outcome of a scaffold run and prints the
// summary, as styled text or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	createdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Failure records one artifact that could not be written.
type Failure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// Report accumulates results across a run. The zero value is ready to
// use.
type Report struct {
	Project string
	Target  string

	Created  []string
	Skipped  []string
	Failed   []Failure
	Warnings []string
	Notes    []string
}

func (r *Report) AddCreated(name string) {
	r.Created = append(r.Created, name)
}

func (r *Report) AddSkipped(name string) {
	r.Skipped = append(r.Skipped, name)
}

func (r *Report) AddFailed(name string, err error) {
	r.Failed = append(r.Failed, Failure{Name: name, Error: err.Error()})
}

func (r *Report) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

func (r *Report) AddNote(msg string) {
	r.Notes = append(r.Notes, msg)
}

// Print writes the human-readable summary: warnings and notes first,
// then per-file failures, then the sorted created/skipped lines.
func (r *Report) Print(w io.Writer) {
	for _, msg := range r.Warnings {
		fmt.Fprintf(w, "%s %s\n", warnStyle.Render("warning:"), msg)
	}
	for _, msg := range r.Notes {
		fmt.Fprintf(w, "%s\n", noteStyle.Render("note: "+msg))
	}
	for _, f := range r.Failed {
		fmt.Fprintf(w, "%s %s: %s\n", errorStyle.Render("error creating"), f.Name, f.Error)
	}
	if len(r.Created) > 0 {
		fmt.Fprintf(w, "%s %s\n", createdStyle.Render("Created:"), strings.Join(sorted(r.Created), ", "))
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "%s %s\n", skippedStyle.Render("Skipped existing:"), strings.Join(sorted(r.Skipped), ", "))
	}
	if len(r.Created) == 0 && len(r.Skipped) == 0 && len(r.Failed) == 0 {
		fmt.Fprintln(w, "Nothing to create.")
	}
}

type jsonReport struct {
	Project  string    `json:"project"`
	Target   string    `json:"target"`
	Created  []string  `json:"created"`
	Skipped  []string  `json:"skipped"`
	Failed   []Failure `json:"failed,omitempty"`
	Warnings []string  `json:"warnings,omitempty"`
	Notes    []string  `json:"notes,omitempty"`
}

// PrintJSON writes the summary as indented JSON. Created and skipped
// are sorted so output is stable.
func (r *Report) PrintJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Project:  r.Project,
		Target:   r.Target,
		Created:  sortedOrEmpty(r.Created),
		Skipped:  sortedOrEmpty(r.Skipped),
		Failed:   r.Failed,
		Warnings: r.Warnings,
		Notes:    r.Notes,
	})
}

// Failed reports make the process exit non-zero; warnings and skips do
// not.
func (r *Report) HasFailures() bool {
	return len(r.Failed) > 0
}

// PrintDryRun lists the operations a run would perform without
// touching the filesystem. Names arrive in execution order and are
// printed as-is.
func PrintDryRun(w io.Writer, creates, skips, notes []string) {
	for _, msg := range notes {
		fmt.Fprintf(w, "%s\n", noteStyle.Render("note: "+msg))
	}
	for _, name := range creates {
		fmt.Fprintf(w, "dry-run: create %s\n", name)
	}
	for _, name := range skips {
		fmt.Fprintf(w, "dry-run: skip existing %s\n", name)
	}
	if len(creates) == 0 {
		fmt.Fprintln(w, "dry-run: nothing to create")
	}
}

func sorted(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}

func sortedOrEmpty(names []string) []string {
	if len(names) == 0 {
		return []string{}
	}
	return sorted(names)
}

// Package lint checks a project description for problems the model layer
// deliberately does not reject: the constructors in pkg/description accept
// any field values, and it is the generator's job to refuse combinations
// it cannot resolve. These checks run before generation so authors get all
// findings at once.
package lint

import (
	"fmt"
	"path"
	"strings"

	"github.com/DevVenusK/tuist/pkg/description"
	"github.com/DevVenusK/tuist/pkg/manifest"
)

// Severity classifies a lint finding.
type Severity string

const (
	// SeverityError marks findings that would break generation
	SeverityError Severity = "error"

	// SeverityWarning marks findings that are suspicious but generable
	SeverityWarning Severity = "warning"
)

// Issue is one finding against a project description.
type Issue struct {
	// Severity is the finding's classification
	Severity Severity

	// Target is the name of the target the finding belongs to
	Target string

	// Phase is the display name of the offending build phase, if any
	Phase string

	// Message describes the problem
	Message string
}

func (i Issue) String() string {
	where := i.Target
	if i.Phase != "" {
		where = fmt.Sprintf("%s/%s", i.Target, i.Phase)
	}
	return fmt.Sprintf("%s: %s: %s", i.Severity, where, i.Message)
}

// Project checks every target of a project and returns all findings.
func Project(project *manifest.Project) []Issue {
	var issues []Issue
	for _, target := range project.Targets {
		issues = append(issues, checkTarget(target)...)
	}
	return issues
}

// HasErrors reports whether any finding has error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

func checkTarget(target manifest.Target) []Issue {
	var issues []Issue

	seen := map[string]bool{}
	for _, phase := range target.CopyFiles {
		issues = append(issues, checkPhase(target.Name, phase)...)

		if phase.Name != "" && seen[phase.Name] {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Target:   target.Name,
				Phase:    phase.Name,
				Message:  "duplicate copy files phase name",
			})
		}
		seen[phase.Name] = true
	}

	return issues
}

func checkPhase(targetName string, phase description.CopyFilesAction) []Issue {
	var issues []Issue

	report := func(severity Severity, message string) {
		issues = append(issues, Issue{
			Severity: severity,
			Target:   targetName,
			Phase:    phase.Name,
			Message:  message,
		})
	}

	if phase.Name == "" {
		report(SeverityError, "copy files phase has no name")
	}

	if !phase.Destination.Valid() {
		report(SeverityError, fmt.Sprintf("unknown destination %q", phase.Destination))
	}

	if phase.Subpath != "" {
		if strings.HasPrefix(phase.Subpath, "/") {
			report(SeverityError, fmt.Sprintf("subpath %q must be relative", phase.Subpath))
		} else if escapesDestination(phase.Subpath) {
			report(SeverityError, fmt.Sprintf("subpath %q escapes the destination directory", phase.Subpath))
		}
	}

	if len(phase.Files) == 0 {
		report(SeverityWarning, "copy files phase copies nothing")
	}

	for _, file := range phase.Files {
		if file.Path == "" {
			report(SeverityError, "file element has an empty path")
		}
	}

	return issues
}

// escapesDestination reports whether a relative subpath resolves outside
// the destination directory it is appended to.
func escapesDestination(subpath string) bool {
	clean := path.Clean(subpath)
	return clean == ".." || strings.HasPrefix(clean, "../")
}

// Package manifest loads and saves project-description manifests. A
// manifest is the serialized form of a project: its targets and the build
// phases embedded in them. All file I/O for descriptions happens here; the
// model packages stay free of it.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DevVenusK/tuist/pkg/description"
	"github.com/DevVenusK/tuist/pkg/logging"
	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger("manifest")

// Project is the root of a project description.
type Project struct {
	// Name is the project name shown in the generated project file
	Name string `yaml:"name" json:"name"`

	// Targets are the buildable targets, in declaration order
	Targets []Target `yaml:"targets" json:"targets"`
}

// Target is one buildable target of a project.
type Target struct {
	// Name is the target name
	Name string `yaml:"name" json:"name"`

	// Product is the produced artifact kind (app, framework, ...);
	// interpreted by the generator, opaque here
	Product string `yaml:"product,omitempty" json:"product,omitempty"`

	// CopyFiles are the target's copy-files build phases; the generator
	// emits them in this order
	CopyFiles []description.CopyFilesAction `yaml:"copyFiles,omitempty" json:"copyFiles,omitempty"`
}

// Parse decodes a YAML manifest.
func Parse(data []byte) (*Project, error) {
	var project Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &project, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Project, error) {
	log.Debug().Str("path", path).Msg("Loading manifest")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	project, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	log.Debug().Str("project", project.Name).Int("targets", len(project.Targets)).Msg("Manifest loaded")
	return project, nil
}

// Dump serializes the project as YAML.
func Dump(project *Project) ([]byte, error) {
	data, err := yaml.Marshal(project)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize manifest: %w", err)
	}
	return data, nil
}

// DumpJSON serializes the project as indented JSON.
func DumpJSON(project *Project) ([]byte, error) {
	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize manifest: %w", err)
	}
	return data, nil
}

package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DevVenusK/tuist/pkg/description"
	"github.com/DevVenusK/tuist/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
name: App
targets:
  - name: App
    product: app
    copyFiles:
      - name: Embed App Extensions
        destination: productsDirectory
        files:
          - path: Products/Widget.appex
      - name: Copy Resources
        destination: resources
        subpath: Extras
        files:
          - path: Resources/a.json
          - path: Resources/b.json
          - path: Assets/Textures
            isReference: true
`

func TestParse(t *testing.T) {
	project, err := manifest.Parse([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "App", project.Name)
	require.Len(t, project.Targets, 1)

	target := project.Targets[0]
	assert.Equal(t, "app", target.Product)
	require.Len(t, target.CopyFiles, 2)

	embed := target.CopyFiles[0]
	assert.Equal(t, "Embed App Extensions", embed.Name)
	assert.Equal(t, description.DestinationProductsDirectory, embed.Destination)
	assert.Empty(t, embed.Subpath)
	assert.Equal(t, []description.FileElement{description.FileGlob("Products/Widget.appex")}, embed.Files)

	resources := target.CopyFiles[1]
	assert.Equal(t, description.DestinationResources, resources.Destination)
	assert.Equal(t, "Extras", resources.Subpath)
	assert.Equal(t, []description.FileElement{
		description.FileGlob("Resources/a.json"),
		description.FileGlob("Resources/b.json"),
		description.FolderReference("Assets/Textures"),
	}, resources.Files)
}

func TestParseRejectsUnknownDestination(t *testing.T) {
	_, err := manifest.Parse([]byte(`
name: App
targets:
  - name: App
    copyFiles:
      - name: Bad
        destination: bundleRoot
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bundleRoot")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := manifest.Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestRoundTripAllDestinations(t *testing.T) {
	// One phase per destination, with and without a subpath, must survive
	// a dump/parse cycle unchanged.
	var phases []description.CopyFilesAction
	for _, dest := range description.Destinations() {
		phases = append(phases,
			description.NewCopyFilesAction("Copy "+dest.String(), dest, "", []description.FileElement{
				description.FileGlob("a.txt"),
			}),
			description.NewCopyFilesAction("Copy "+dest.String()+" sub", dest, "Extras", []description.FileElement{
				description.FileGlob("b.txt"),
				description.FolderReference("dir"),
			}),
		)
	}

	project := &manifest.Project{
		Name:    "RoundTrip",
		Targets: []manifest.Target{{Name: "App", Product: "app", CopyFiles: phases}},
	}

	data, err := manifest.Dump(project)
	require.NoError(t, err)

	decoded, err := manifest.Parse(data)
	require.NoError(t, err)
	require.Len(t, decoded.Targets, 1)
	require.Len(t, decoded.Targets[0].CopyFiles, len(phases))

	for i, phase := range phases {
		assert.True(t, phase.Equal(decoded.Targets[0].CopyFiles[i]), "phase %d differs after round trip", i)
	}
}

func TestDumpJSONRoundTrip(t *testing.T) {
	project := &manifest.Project{
		Name: "App",
		Targets: []manifest.Target{{
			Name:      "App",
			CopyFiles: []description.CopyFilesAction{description.Frameworks("Embed", "", description.FileGlob("X.framework"))},
		}},
	}

	data, err := manifest.DumpJSON(project)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"destination": "frameworks"`)

	// JSON output parses back through the YAML reader since YAML is a
	// superset of JSON.
	decoded, err := manifest.Parse(data)
	require.NoError(t, err)
	assert.True(t, project.Targets[0].CopyFiles[0].Equal(decoded.Targets[0].CopyFiles[0]))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0644))

	project, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "App", project.Name)
}

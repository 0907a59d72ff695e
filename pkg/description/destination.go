package description

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Destination identifies a fixed location inside a generated application
// bundle or build output that a copy-files phase targets. The string value
// of each constant is the serialized token and must not be renamed.
type Destination string

const (
	// DestinationAbsolutePath copies files to an absolute path outside the bundle
	DestinationAbsolutePath Destination = "absolutePath"

	// DestinationProductsDirectory copies files to the build products directory
	DestinationProductsDirectory Destination = "productsDirectory"

	// DestinationWrapper copies files into the wrapper directory of the bundle
	DestinationWrapper Destination = "wrapper"

	// DestinationExecutables copies files next to the bundle's executables
	DestinationExecutables Destination = "executables"

	// DestinationResources copies files into the bundle's resources folder
	DestinationResources Destination = "resources"

	// DestinationJavaResources copies files into the Java resources folder
	DestinationJavaResources Destination = "javaResources"

	// DestinationFrameworks copies files into the frameworks folder
	DestinationFrameworks Destination = "frameworks"

	// DestinationSharedFrameworks copies files into the shared frameworks folder
	DestinationSharedFrameworks Destination = "sharedFrameworks"

	// DestinationSharedSupport copies files into the shared support folder
	DestinationSharedSupport Destination = "sharedSupport"

	// DestinationPlugins copies files into the plug-ins folder
	DestinationPlugins Destination = "plugins"

	// DestinationOther copies files to a destination resolved by the subpath alone
	DestinationOther Destination = "other"
)

// Destinations returns all valid destinations in their declaration order.
func Destinations() []Destination {
	return []Destination{
		DestinationAbsolutePath,
		DestinationProductsDirectory,
		DestinationWrapper,
		DestinationExecutables,
		DestinationResources,
		DestinationJavaResources,
		DestinationFrameworks,
		DestinationSharedFrameworks,
		DestinationSharedSupport,
		DestinationPlugins,
		DestinationOther,
	}
}

// ParseDestination converts a serialized token into a Destination.
// It returns an error for any token outside the closed set.
func ParseDestination(s string) (Destination, error) {
	d := Destination(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown copy files destination %q", s)
	}
	return d, nil
}

// Valid reports whether d is one of the closed set of destinations.
func (d Destination) Valid() bool {
	switch d {
	case DestinationAbsolutePath,
		DestinationProductsDirectory,
		DestinationWrapper,
		DestinationExecutables,
		DestinationResources,
		DestinationJavaResources,
		DestinationFrameworks,
		DestinationSharedFrameworks,
		DestinationSharedSupport,
		DestinationPlugins,
		DestinationOther:
		return true
	}
	return false
}

func (d Destination) String() string {
	return string(d)
}

// UnmarshalYAML rejects tokens outside the closed destination set so that a
// decoded model can never carry an unknown destination.
func (d *Destination) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDestination(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalJSON rejects tokens outside the closed destination set.
func (d *Destination) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDestination(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

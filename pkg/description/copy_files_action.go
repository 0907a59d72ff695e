package description

// CopyFilesAction describes one copy-files build phase of a target: a set
// of files copied into a destination directory of the generated bundle,
// optionally under a subpath. Values are plain data and are never mutated
// after construction.
type CopyFilesAction struct {
	// Name is the display name of the generated build phase
	Name string `yaml:"name" json:"name"`

	// Destination is the copy target inside the generated bundle
	Destination Destination `yaml:"destination" json:"destination"`

	// Subpath is an optional path appended under the resolved destination
	// directory; empty means no subpath
	Subpath string `yaml:"subpath,omitempty" json:"subpath,omitempty"`

	// Files are copied in order; the order is preserved in the generated
	// phase and duplicates are kept as supplied
	Files []FileElement `yaml:"files" json:"files"`
}

// NewCopyFilesAction builds a copy-files phase from its parts. The files
// slice is copied so later changes to the caller's slice do not leak into
// the action; a nil slice yields an empty file list.
func NewCopyFilesAction(name string, destination Destination, subpath string, files []FileElement) CopyFilesAction {
	owned := make([]FileElement, len(files))
	copy(owned, files)
	return CopyFilesAction{
		Name:        name,
		Destination: destination,
		Subpath:     subpath,
		Files:       owned,
	}
}

// CopyFiles is the variadic form of NewCopyFilesAction.
func CopyFiles(name string, destination Destination, subpath string, files ...FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, destination, subpath, files)
}

// Equal reports structural equality: two actions are equal when name,
// destination, subpath and the ordered file list all match.
func (a CopyFilesAction) Equal(b CopyFilesAction) bool {
	if a.Name != b.Name || a.Destination != b.Destination || a.Subpath != b.Subpath {
		return false
	}
	if len(a.Files) != len(b.Files) {
		return false
	}
	for i := range a.Files {
		if a.Files[i] != b.Files[i] {
			return false
		}
	}
	return true
}

// Destination-specific factories, one variadic and one slice form per
// destination. The absolutePath destination has no factory and is reached
// through NewCopyFilesAction directly.

// ProductsDirectory builds a phase copying into the products directory.
func ProductsDirectory(name, subpath string, files ...FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationProductsDirectory, subpath, files)
}

// ProductsDirectoryList is the slice form of ProductsDirectory.
func ProductsDirectoryList(name, subpath string, files []FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationProductsDirectory, subpath, files)
}

// Wrapper builds a phase copying into the wrapper directory.
func Wrapper(name, subpath string, files ...FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationWrapper, subpath, files)
}

// WrapperList is the slice form of Wrapper.
func WrapperList(name, subpath string, files []FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationWrapper, subpath, files)
}

// Executables builds a phase copying next to the executables.
func Executables(name, subpath string, files ...FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationExecutables, subpath, files)
}

// ExecutablesList is the slice form of Executables.
func ExecutablesList(name, subpath string, files []FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationExecutables, subpath, files)
}

// Resources builds a phase copying into the resources folder.
func Resources(name, subpath string, files ...FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationResources, subpath, files)
}

// ResourcesList is the slice form of Resources.
func ResourcesList(name, subpath string, files []FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationResources, subpath, files)
}

// JavaResources builds a phase copying into the Java resources folder.
func JavaResources(name, subpath string, files ...FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationJavaResources, subpath, files)
}

// JavaResourcesList is the slice form of JavaResources.
func JavaResourcesList(name, subpath string, files []FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationJavaResources, subpath, files)
}

// Frameworks builds a phase copying into the frameworks folder.
func Frameworks(name, subpath string, files ...FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationFrameworks, subpath, files)
}

// FrameworksList is the slice form of Frameworks.
func FrameworksList(name, subpath string, files []FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationFrameworks, subpath, files)
}

// SharedFrameworks builds a phase copying into the shared frameworks folder.
func SharedFrameworks(name, subpath string, files ...FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationSharedFrameworks, subpath, files)
}

// SharedFrameworksList is the slice form of SharedFrameworks.
func SharedFrameworksList(name, subpath string, files []FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationSharedFrameworks, subpath, files)
}

// SharedSupport builds a phase copying into the shared support folder.
func SharedSupport(name, subpath string, files ...FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationSharedSupport, subpath, files)
}

// SharedSupportList is the slice form of SharedSupport.
func SharedSupportList(name, subpath string, files []FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationSharedSupport, subpath, files)
}

// Plugins builds a phase copying into the plug-ins folder.
func Plugins(name, subpath string, files ...FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationPlugins, subpath, files)
}

// PluginsList is the slice form of Plugins.
func PluginsList(name, subpath string, files []FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationPlugins, subpath, files)
}

// Other builds a phase whose location is resolved from the subpath alone.
func Other(name, subpath string, files ...FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationOther, subpath, files)
}

// OtherList is the slice form of Other.
func OtherList(name, subpath string, files []FileElement) CopyFilesAction {
	return NewCopyFilesAction(name, DestinationOther, subpath, files)
}

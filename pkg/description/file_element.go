package description

// FileElement references a file to be copied by a build phase. The path may
// be a literal project-relative path or a glob pattern; resolution against
// the file system happens in the generator, never here.
type FileElement struct {
	// Path is the project-relative path or glob pattern
	Path string `yaml:"path" json:"path"`

	// IsReference marks the element as a folder reference that is copied
	// as a whole instead of being expanded
	IsReference bool `yaml:"isReference,omitempty" json:"isReference,omitempty"`
}

// FileGlob returns a FileElement for a literal path or glob pattern.
func FileGlob(pattern string) FileElement {
	return FileElement{Path: pattern}
}

// FolderReference returns a FileElement that copies the folder at path as a
// single reference.
func FolderReference(path string) FileElement {
	return FileElement{Path: path, IsReference: true}
}

func (f FileElement) String() string {
	return f.Path
}

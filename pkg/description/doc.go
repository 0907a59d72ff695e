// Package description defines the project-description model consumed by the
// project generator. It includes the CopyFilesAction build phase, the
// Destination enumeration of copy targets, and the FileElement reference
// type, along with the construction API for all of them.
package description

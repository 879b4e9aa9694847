package models

// GroupMetadata represents a named group of commands declared on a type
type GroupMetadata struct {
	Name     string        // group name from the annotation
	Receiver string        // type the group was declared on
	Comment  string        // group doc comment with annotation lines removed
	Commands []CommandData // commands declared on the group's type
}

// PackageMetadata represents everything extracted from a single package
type PackageMetadata struct {
	PackageName string          // Go package name
	PackagePath string          // directory the package was parsed from
	Groups      []GroupMetadata // command groups, in declaration order
	Commands    []CommandData   // commands not attached to any group
}

// CommandCount returns the total number of commands in the package
func (p *PackageMetadata) CommandCount() int {
	n := len(p.Commands)
	for _, g := range p.Groups {
		n += len(g.Commands)
	}
	return n
}

// IsEmpty reports whether the package contained no annotated commands
func (p *PackageMetadata) IsEmpty() bool {
	return p.CommandCount() == 0
}

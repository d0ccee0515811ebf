package domain

// FileToken is one name(content) pair from an entry
type FileToken struct {
	// Name is the file name, never empty
	Name string

	// Content is an opaque equality key, never empty
	Content string
}

// Entry is one parsed input line
type Entry struct {
	// Index is the position of the source line
	Index int

	// Directory is the first token of the line
	Directory string

	// Files in the order they appeared on the line
	Files []FileToken
}

// FullPath joins a directory and a file name
func FullPath(directory, name string) string {
	return directory + "/" + name
}

// Paths returns the full path of every file in the entry
func (e Entry) Paths() []string {
	paths := make([]string, len(e.Files))
	for i, f := range e.Files {
		paths[i] = FullPath(e.Directory, f.Name)
	}
	return paths
}

// DuplicateGroup is a sorted list of full paths sharing one content value.
// Always holds at least two paths.
type DuplicateGroup []string

// Smallest returns the lexicographically smallest path
func (g DuplicateGroup) Smallest() string {
	if len(g) == 0 {
		return ""
	}
	return g[0]
}

package manifest

import (
	"gopkg.in/yaml.v3"

	"github.com/hooklint/hooklint/internal/tool"
)

// Entry is one hook definition in the .pre-commit-hooks.yaml manifest the
// hook framework consumes.
type Entry struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Entry    string `yaml:"entry"`
	Language string `yaml:"language"`
	Files    string `yaml:"files"`
}

const filesPattern = `\.(c|cc|cpp|cxx|h|hpp|hxx)$`

// Entries builds one manifest entry per supported tool, in registry order.
func Entries() []Entry {
	var out []Entry
	for _, spec := range tool.All() {
		out = append(out, Entry{
			ID:       spec.ID,
			Name:     spec.Description,
			Entry:    spec.ID + "-hook",
			Language: "system",
			Files:    filesPattern,
		})
	}
	return out
}

func Render() ([]byte, error) {
	return yaml.Marshal(Entries())
}

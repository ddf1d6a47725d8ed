package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Reports []reportSchema `toml:"reports"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported history schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type reportSchema struct {
	Date    string `toml:"date"`
	Start   string `toml:"start"`
	End     string `toml:"end"`
	Total   string `toml:"total"`
	Working string `toml:"working"`
	Resting string `toml:"resting"`
	Events  int    `toml:"events"`
	SavedAt string `toml:"saved_at,omitempty"`
}

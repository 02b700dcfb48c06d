package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// SchemaVersion is written by Write and the highest version Parse accepts.
const SchemaVersion = 1

// ImportSchema is the top-level JSON structure of a task file.
type ImportSchema struct {
	Version  int             `json:"version,omitempty"`
	Defaults *DefaultsImport `json:"defaults,omitempty"`
	Tasks    []TaskImport    `json:"tasks"`
}

// DefaultsImport holds values applied to every task that leaves them unset.
type DefaultsImport struct {
	DueDate  string `json:"due_date,omitempty"`
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// TaskImport is one task in the file. Field names match the task JSON.
type TaskImport struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// LoadImportSchema reads and parses a task import file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a task file. Unknown fields are rejected so typos such as
// "due" instead of "due_date" do not silently drop data.
func Parse(r io.Reader) (*ImportSchema, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var schema ImportSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	if schema.Version > SchemaVersion {
		return nil, fmt.Errorf("import file version %d is newer than supported version %d", schema.Version, SchemaVersion)
	}
	return &schema, nil
}

// Write encodes schema as indented JSON.
func Write(w io.Writer, schema *ImportSchema) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(schema); err != nil {
		return fmt.Errorf("encoding task file: %w", err)
	}
	return nil
}

package holiday

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Read decodes a JSON object mapping YYYY-MM-DD dates to names.
func Read(r io.Reader) (*Table, error) {
	var entries map[string]string
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding holiday file: %w", err)
	}
	t := NewTable(entries)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile reads a holiday table from a JSON file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening holiday file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Write encodes t as an indented JSON object.
func Write(w io.Writer, t *Table) error {
	entries := make(map[string]string, t.Len())
	for _, h := range t.Holidays() {
		entries[h.Date] = h.Name
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

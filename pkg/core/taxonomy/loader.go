package taxonomy

import (
	"fmt"
	"os"

	hjson "github.com/hjson/hjson-go/v4"
)

// fileFormat is the on-disk shape of a taxonomy overlay. Hjson so taxonomy
// maintainers can comment entries and skip quoting.
type fileFormat struct {
	FieldTags       []FieldEntry    `json:"field_tags"`
	StatementTags   []TagDefinition `json:"statement_tags"`
	MandatoryFields map[string]bool `json:"mandatory_fields"`
}

// LoadFile reads a complete taxonomy registry from an Hjson (or plain JSON)
// file. The file's field order is preserved as the registry iteration order.
func LoadFile(path string) (*Dependencies, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}
	var f fileFormat
	if err := hjson.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file %s: %w", path, err)
	}
	if len(f.FieldTags) == 0 {
		return nil, fmt.Errorf("taxonomy file %s defines no field tags", path)
	}
	return NewDependencies(f.FieldTags, f.StatementTags, f.MandatoryFields), nil
}

// Merge overlays extra entries onto a base registry. Overlay field entries
// replace base entries with the same field name in place (order kept); new
// fields append after the base. Mandatory flags from the overlay win.
func Merge(base *Dependencies, overlay *Dependencies) *Dependencies {
	fields := make([]FieldEntry, len(base.FieldTags))
	copy(fields, base.FieldTags)

	pos := make(map[string]int, len(fields))
	for i, e := range fields {
		pos[e.Field] = i
	}
	for _, e := range overlay.FieldTags {
		if i, ok := pos[e.Field]; ok {
			fields[i] = e
		} else {
			pos[e.Field] = len(fields)
			fields = append(fields, e)
		}
	}

	stmts := make([]TagDefinition, len(base.StatementTags))
	copy(stmts, base.StatementTags)
	seen := make(map[string]bool, len(stmts))
	for _, t := range stmts {
		seen[t.ElementName] = true
	}
	for _, t := range overlay.StatementTags {
		if !seen[t.ElementName] {
			stmts = append(stmts, t)
			seen[t.ElementName] = true
		}
	}

	mandatory := make(map[string]bool, len(base.MandatoryFields))
	for k, v := range base.MandatoryFields {
		mandatory[k] = v
	}
	for k, v := range overlay.MandatoryFields {
		mandatory[k] = v
	}

	return NewDependencies(fields, stmts, mandatory)
}

package tagging

import (
	"fmt"
	"strings"

	"xbrl_tagging/pkg/core/taxonomy"
)

// ResolveTags finds the tag definitions for a field name.
//
// Exact key match wins outright. Otherwise the registry is walked in its
// definition order and the first entry whose name contains the field (or is
// contained by it, case-insensitively) is used as a fallback. No match is a
// normal outcome reported through the message trail, never an error.
func ResolveTags(field string, deps *taxonomy.Dependencies) ([]taxonomy.TagDefinition, []string) {
	var messages []string

	if tags, ok := deps.Lookup(field); ok {
		messages = append(messages, fmt.Sprintf("Found exact tag match for %s", field))
		return tags, messages
	}
	messages = append(messages, fmt.Sprintf("No exact tag match found for %s", field))

	lower := strings.ToLower(field)
	for _, entry := range deps.FieldTags {
		candidate := strings.ToLower(entry.Field)
		if strings.Contains(candidate, lower) || strings.Contains(lower, candidate) {
			messages = append(messages, fmt.Sprintf("Using similar tag: %s", entry.Field))
			return entry.Tags, messages
		}
	}

	messages = append(messages, fmt.Sprintf("No matching tags found for %s", field))
	return nil, messages
}

// TagElement applies tags to a single scalar value, carrying the mandatory
// flag and the resolver's diagnostic trail.
func TagElement(field string, value interface{}, deps *taxonomy.Dependencies) *TaggedElement {
	tags, messages := ResolveTags(field, deps)

	mandatory := deps.IsMandatory(field)
	if mandatory {
		messages = append(messages, fmt.Sprintf("Note: %s is a mandatory field", field))
	}

	return &TaggedElement{
		Value:       value,
		Tags:        tags,
		IsMandatory: mandatory,
		Messages:    messages,
	}
}

package tagging

import (
	"reflect"
	"strings"

	"xbrl_tagging/pkg/core/taxonomy"
)

// TagSection tags every scalar field of one statement section and collects
// the section-level abstract tags.
//
// Meta tags are the statement tags whose element name contains the section
// name (case-insensitive, that direction only). Fields holding nested maps or
// slices are skipped entirely: breaking them down is the recursive caller's
// job, not this level's. Resolver messages are discarded here.
func TagSection(sectionName string, sectionData map[string]interface{}, deps *taxonomy.Dependencies) *TaggedSection {
	section := &TaggedSection{
		MetaTags: []taxonomy.TagDefinition{},
		Fields:   make(map[string]*TaggedElement, len(sectionData)),
	}

	lowerSection := strings.ToLower(sectionName)
	for _, tag := range deps.StatementTags {
		if strings.Contains(strings.ToLower(tag.ElementName), lowerSection) {
			section.MetaTags = append(section.MetaTags, tag)
		}
	}

	for field, value := range sectionData {
		if isNested(value) {
			continue
		}
		tags, _ := ResolveTags(field, deps)
		section.Fields[field] = &TaggedElement{
			Value: value,
			Tags:  tags,
		}
	}

	return section
}

// isNested reports whether a value is a mapping or sequence rather than a
// scalar. Strings are scalars; []byte counts as a slice and is skipped.
func isNested(v interface{}) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

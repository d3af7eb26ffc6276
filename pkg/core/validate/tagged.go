// Package validate checks fully tagged filing documents for completeness:
// mandatory-field coverage, per-field tag presence and statement-level
// calculation consistency. Problems are reported as structured issues, never
// as errors.
package validate

import (
	"fmt"
	"sort"

	"xbrl_tagging/pkg/core/tagging"
	"xbrl_tagging/pkg/core/taxonomy"
)

// Issue types.
const (
	IssueMissingMandatoryField = "missing_mandatory_field"
	IssueMissingTags           = "missing_tags"
)

// ValidationIssue localizes one problem in a tagged document. Section is
// empty for document-wide issues.
type ValidationIssue struct {
	Type    string `json:"type"`
	Section string `json:"section,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateTaggedDocument checks a tagged document against the registry.
//
// Mandatory fields are satisfied by appearing in any section. Fields whose
// tag list is empty get a missing_tags issue. Traversal is sorted so repeat
// runs produce identical output; callers must not read meaning into the
// order beyond mandatory issues preceding tag issues.
func ValidateTaggedDocument(doc tagging.TaggedDocument, deps *taxonomy.Dependencies) []ValidationIssue {
	issues := []ValidationIssue{}

	mandatory := make([]string, 0, len(deps.MandatoryFields))
	for field, required := range deps.MandatoryFields {
		if required {
			mandatory = append(mandatory, field)
		}
	}
	sort.Strings(mandatory)

	for _, field := range mandatory {
		found := false
		for _, section := range doc {
			if section == nil {
				continue
			}
			if _, ok := section.Fields[field]; ok {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, ValidationIssue{
				Type:    IssueMissingMandatoryField,
				Field:   field,
				Message: fmt.Sprintf("Mandatory field '%s' is missing from the tagged data", field),
			})
		}
	}

	sectionNames := make([]string, 0, len(doc))
	for name := range doc {
		sectionNames = append(sectionNames, name)
	}
	sort.Strings(sectionNames)

	for _, sectionName := range sectionNames {
		section := doc[sectionName]
		if section == nil {
			continue
		}
		fields := make([]string, 0, len(section.Fields))
		for field := range section.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		for _, field := range fields {
			element := section.Fields[field]
			if element == nil || len(element.Tags) == 0 {
				issues = append(issues, ValidationIssue{
					Type:    IssueMissingTags,
					Section: sectionName,
					Field:   field,
					Message: fmt.Sprintf("No tags applied to field '%s' in section '%s'", field, sectionName),
				})
			}
		}
	}

	return issues
}

// Package tagging implements the deterministic XBRL tagging core: tag
// resolution against the taxonomy registry, reporting-context construction
// and section-level tagging. All functions are pure over immutable inputs;
// callers may tag sections of the same document in parallel and merge the
// results.
package tagging

import "xbrl_tagging/pkg/core/taxonomy"

// TaggedElement is one scalar value with its resolved tags. Messages carry
// the resolver's diagnostic trail; the section tagger drops them, TagElement
// keeps them.
type TaggedElement struct {
	Value       interface{}              `json:"value"`
	Tags        []taxonomy.TagDefinition `json:"tags"`
	IsMandatory bool                     `json:"is_mandatory,omitempty"`
	Messages    []string                 `json:"messages,omitempty"`
}

// TaggedSection is one named statement section: per-field tagged elements
// plus section-level abstract tags.
type TaggedSection struct {
	MetaTags []taxonomy.TagDefinition  `json:"meta_tags"`
	Fields   map[string]*TaggedElement `json:"fields"`
}

// TaggedDocument is the assembled filing tree, keyed by section name. This is
// the interchange shape between the section tagger and the validator.
type TaggedDocument map[string]*TaggedSection

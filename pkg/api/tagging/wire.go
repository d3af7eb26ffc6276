package tagging

import (
	core "xbrl_tagging/pkg/core/tagging"
	"xbrl_tagging/pkg/core/taxonomy"
)

// Wire shapes for tagged documents posted to the validation endpoint.
type elementWire struct {
	Value interface{}              `json:"value"`
	Tags  []taxonomy.TagDefinition `json:"tags"`
}

type sectionWire struct {
	MetaTags []taxonomy.TagDefinition `json:"meta_tags"`
	Fields   map[string]*elementWire  `json:"fields"`
}

// docFromWire converts the request-body shape of a tagged document into the
// core document type the validator consumes.
func docFromWire(doc map[string]*sectionWire) core.TaggedDocument {
	tagged := make(core.TaggedDocument, len(doc))
	for name, section := range doc {
		if section == nil {
			tagged[name] = nil
			continue
		}
		out := &core.TaggedSection{
			MetaTags: section.MetaTags,
			Fields:   make(map[string]*core.TaggedElement, len(section.Fields)),
		}
		for field, element := range section.Fields {
			if element == nil {
				out.Fields[field] = nil
				continue
			}
			out.Fields[field] = &core.TaggedElement{
				Value: element.Value,
				Tags:  element.Tags,
			}
		}
		tagged[name] = out
	}
	return tagged
}

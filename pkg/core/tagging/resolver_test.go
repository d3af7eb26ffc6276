package tagging

import (
	"strings"
	"testing"

	"xbrl_tagging/pkg/core/taxonomy"
)

func TestResolveTagsExactMatch(t *testing.T) {
	deps := taxonomy.Default()

	tags, messages := ResolveTags("TotalAssets", deps)
	if len(tags) == 0 {
		t.Fatal("exact match returned no tags")
	}
	if tags[0].ElementName != "sg-as:Assets" {
		t.Errorf("TotalAssets resolved to %s, want sg-as:Assets", tags[0].ElementName)
	}
	if len(messages) != 1 || messages[0] != "Found exact tag match for TotalAssets" {
		t.Errorf("messages = %v", messages)
	}
}

func TestResolveTagsFuzzyMatch(t *testing.T) {
	deps := taxonomy.Default()

	tests := []struct {
		name      string
		field     string
		wantField string // registry entry the fallback should land on
	}{
		// "Assets" is a substring of several entries; the registry walk must
		// stop at the first one in definition order.
		{"bare total", "Assets", "TotalCurrentAssets"},
		// field longer than the registry entry: containment the other way
		{"field contains entry", "RevenueFromContracts", "Revenue"},
		{"case insensitive", "totalassets", "TotalAssets"},
		{"payables", "Payables", "TradeAndOtherPayables"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, messages := ResolveTags(tt.field, deps)
			if len(tags) == 0 {
				t.Fatalf("ResolveTags(%q) found nothing, messages: %v", tt.field, messages)
			}
			wantTags, _ := deps.Lookup(tt.wantField)
			if tags[0].ElementName != wantTags[0].ElementName {
				t.Errorf("ResolveTags(%q)[0] = %s, want %s (entry %s)",
					tt.field, tags[0].ElementName, wantTags[0].ElementName, tt.wantField)
			}
			if messages[0] != "No exact tag match found for "+tt.field {
				t.Errorf("first message = %q", messages[0])
			}
			if messages[1] != "Using similar tag: "+tt.wantField {
				t.Errorf("second message = %q", messages[1])
			}
		})
	}
}

func TestResolveTagsFuzzyOrderIsStable(t *testing.T) {
	// Two entries both contain "Total"; the first in definition order wins,
	// every time.
	deps := taxonomy.NewDependencies([]taxonomy.FieldEntry{
		{Field: "TotalCurrentAssets", Tags: []taxonomy.TagDefinition{{ElementName: "sg-as:CurrentAssets"}}},
		{Field: "TotalAssets", Tags: []taxonomy.TagDefinition{{ElementName: "sg-as:Assets"}}},
	}, nil, nil)

	for i := 0; i < 50; i++ {
		tags, _ := ResolveTags("Total", deps)
		if len(tags) == 0 || tags[0].ElementName != "sg-as:CurrentAssets" {
			t.Fatalf("iteration %d: fuzzy winner = %v, want sg-as:CurrentAssets", i, tags)
		}
	}
}

func TestResolveTagsNoMatch(t *testing.T) {
	deps := taxonomy.Default()

	tags, messages := ResolveTags("CompletelyUnrelatedConcept", deps)
	if tags != nil {
		t.Errorf("no-match returned tags: %v", tags)
	}
	last := messages[len(messages)-1]
	if last != "No matching tags found for CompletelyUnrelatedConcept" {
		t.Errorf("final message = %q", last)
	}
}

func TestTagElement(t *testing.T) {
	deps := taxonomy.Default()

	t.Run("mandatory field", func(t *testing.T) {
		element := TagElement("TotalAssets", 1500000.0, deps)
		if !element.IsMandatory {
			t.Error("TotalAssets not flagged mandatory")
		}
		if element.Value != 1500000.0 {
			t.Errorf("value = %v", element.Value)
		}
		found := false
		for _, msg := range element.Messages {
			if msg == "Note: TotalAssets is a mandatory field" {
				found = true
			}
		}
		if !found {
			t.Errorf("mandatory note missing from %v", element.Messages)
		}
	})

	t.Run("optional field", func(t *testing.T) {
		element := TagElement("Inventories", 42000.0, deps)
		if element.IsMandatory {
			t.Error("Inventories flagged mandatory")
		}
		for _, msg := range element.Messages {
			if strings.Contains(msg, "mandatory") {
				t.Errorf("optional field carries mandatory note: %q", msg)
			}
		}
	})

	t.Run("unmatched field keeps value", func(t *testing.T) {
		element := TagElement("MysteryLine", "text", deps)
		if len(element.Tags) != 0 {
			t.Errorf("unmatched field got tags: %v", element.Tags)
		}
		if element.Value != "text" {
			t.Errorf("value = %v", element.Value)
		}
	})
}

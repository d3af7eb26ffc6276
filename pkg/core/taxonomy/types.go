// Package taxonomy holds the Singapore ACRA XBRL taxonomy registry consumed
// by the tagging core: tag definitions, the ordered field→tag index, the
// section-level statement tags and the mandatory-field index. The registry is
// loaded once per taxonomy version and treated as immutable afterwards.
package taxonomy

// Data types defined by the ACRA taxonomy (version 2022.2 subset).
const (
	TypeMonetary = "monetaryItemType"
	TypeString   = "stringItemType"
	TypeDate     = "dateItemType"
	TypeBoolean  = "booleanItemType"
	TypeShares   = "sharesItemType"
	TypePercent  = "percentItemType"
)

// Balance types. Credit items grow liabilities/equity/revenue; debit items
// grow assets/expenses. Abstract and textual tags carry no balance.
const (
	BalanceCredit = "credit"
	BalanceDebit  = "debit"
	BalanceNone   = ""
)

// Period types.
const (
	PeriodInstant  = "instant"
	PeriodDuration = "duration"
)

// TagDefinition is one taxonomy concept. Immutable; owned by the registry.
type TagDefinition struct {
	ElementName string `json:"element_name"`
	DataType    string `json:"data_type"`
	BalanceType string `json:"balance_type"`
	PeriodType  string `json:"period_type"`
	Description string `json:"description"`
}

// ToMap renders the definition as a plain key-value mapping for embedding in
// JSON-like filing output.
func (t TagDefinition) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"element_name": t.ElementName,
		"data_type":    t.DataType,
		"balance_type": t.BalanceType,
		"period_type":  t.PeriodType,
		"description":  t.Description,
	}
}

// FieldEntry maps one field name to its tag sequence, first tag preferred.
// Entries live in a slice, not a map: fuzzy resolution stops at the first
// substring-compatible entry, so definition order is part of the contract.
type FieldEntry struct {
	Field string          `json:"field"`
	Tags  []TagDefinition `json:"tags"`
}

// Dependencies is the full registry handed to the tagging core by the
// orchestration layer. Read-only after construction.
type Dependencies struct {
	FieldTags       []FieldEntry    `json:"field_tags"`
	StatementTags   []TagDefinition `json:"statement_tags"`
	MandatoryFields map[string]bool `json:"mandatory_fields"`

	// exact-lookup index over FieldTags, built lazily by NewDependencies
	fieldIndex map[string]int
}

// NewDependencies builds a registry and its exact-lookup index. Later entries
// with a duplicate field name are ignored for exact lookup (first wins), which
// mirrors iteration order for the fuzzy path.
func NewDependencies(fieldTags []FieldEntry, statementTags []TagDefinition, mandatory map[string]bool) *Dependencies {
	d := &Dependencies{
		FieldTags:       fieldTags,
		StatementTags:   statementTags,
		MandatoryFields: mandatory,
		fieldIndex:      make(map[string]int, len(fieldTags)),
	}
	if d.MandatoryFields == nil {
		d.MandatoryFields = map[string]bool{}
	}
	for i, e := range fieldTags {
		if _, dup := d.fieldIndex[e.Field]; !dup {
			d.fieldIndex[e.Field] = i
		}
	}
	return d
}

// Lookup returns the tag sequence for an exact field name.
func (d *Dependencies) Lookup(field string) ([]TagDefinition, bool) {
	if i, ok := d.fieldIndex[field]; ok {
		return d.FieldTags[i].Tags, true
	}
	return nil, false
}

// IsMandatory reports whether the field is required in a compliant filing.
func (d *Dependencies) IsMandatory(field string) bool {
	return d.MandatoryFields[field]
}

package tagging

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Input-contract violations. "Not found" conditions are never errors; these
// cover malformed inputs that would otherwise produce a corrupt identifier.
var (
	ErrMissingPeriodEnd = errors.New("period end date is required")
	ErrInvalidPeriod    = errors.New("period start must not be after period end")
	ErrInvalidDimension = errors.New("dimension names and values must be non-empty")
)

// ContextInput carries the parameters of one reporting context.
type ContextInput struct {
	EntityName       string
	EntityIdentifier string
	PeriodEnd        time.Time
	PeriodStart      *time.Time // nil for instant contexts
	IsConsolidated   bool
	Dimensions       map[string]string
}

// ContextEntity identifies the reporting entity inside a descriptor.
type ContextEntity struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
}

// ContextPeriod is the ISO-formatted period of a descriptor. StartDate is
// empty for instant contexts.
type ContextPeriod struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date"`
}

// ContextDescriptor is one immutable XBRL reporting context. Identical inputs
// always yield a byte-identical ID; downstream consumers key facts by it.
type ContextDescriptor struct {
	ID             string            `json:"id"`
	Entity         ContextEntity     `json:"entity"`
	Period         ContextPeriod     `json:"period"`
	IsConsolidated bool              `json:"is_consolidated"`
	Dimensions     map[string]string `json:"dimensions,omitempty"`
}

// BuildContext constructs a context descriptor with its deterministic ID.
//
// ID grammar: "ctx_" + ("i" + end | "d" + start + "to" + end, dates as
// YYYYMMDD) + "_" + ("c" for consolidated, "s" otherwise), then sorted
// "name-value" dimension parts joined with "_" when dimensions are present.
func BuildContext(in ContextInput) (*ContextDescriptor, error) {
	if in.PeriodEnd.IsZero() {
		return nil, ErrMissingPeriodEnd
	}
	if in.PeriodStart != nil && in.PeriodStart.After(in.PeriodEnd) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidPeriod,
			in.PeriodStart.Format("2006-01-02"), in.PeriodEnd.Format("2006-01-02"))
	}
	for name, value := range in.Dimensions {
		if name == "" || value == "" {
			return nil, ErrInvalidDimension
		}
	}

	periodPart := "i" + in.PeriodEnd.Format("20060102")
	if in.PeriodStart != nil {
		periodPart = "d" + in.PeriodStart.Format("20060102") + "to" + in.PeriodEnd.Format("20060102")
	}

	scopePart := "s"
	if in.IsConsolidated {
		scopePart = "c"
	}

	id := "ctx_" + periodPart + "_" + scopePart

	if len(in.Dimensions) > 0 {
		names := make([]string, 0, len(in.Dimensions))
		for name := range in.Dimensions {
			names = append(names, name)
		}
		sort.Strings(names)

		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, name+"-"+in.Dimensions[name])
		}
		id = id + "_" + strings.Join(parts, "_")
	}

	desc := &ContextDescriptor{
		ID: id,
		Entity: ContextEntity{
			Name:       in.EntityName,
			Identifier: in.EntityIdentifier,
		},
		Period: ContextPeriod{
			EndDate: in.PeriodEnd.Format("2006-01-02"),
		},
		IsConsolidated: in.IsConsolidated,
	}
	if in.PeriodStart != nil {
		desc.Period.StartDate = in.PeriodStart.Format("2006-01-02")
	}
	if len(in.Dimensions) > 0 {
		dims := make(map[string]string, len(in.Dimensions))
		for k, v := range in.Dimensions {
			dims[k] = v
		}
		desc.Dimensions = dims
	}

	return desc, nil
}

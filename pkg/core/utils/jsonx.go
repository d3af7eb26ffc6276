// Package utils holds small shared helpers: lenient JSON parsing for model
// output and markdown cleanup for generated reports.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON defects in model output: missing
// key quotes, single quotes, unclosed brackets, trailing commas, markdown
// code fences.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// ParseHJSON parses Hjson (comments, unquoted keys, optional commas) and
// returns equivalent standard JSON.
func ParseHJSON(input string) (string, error) {
	var result interface{}
	if err := hjson.Unmarshal([]byte(input), &result); err != nil {
		return "", fmt.Errorf("hjson parse failed: %w", err)
	}
	out, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("json marshal failed: %w", err)
	}
	return string(out), nil
}

// SmartParse tries strict JSON first, then repaired JSON, then Hjson, and
// unmarshals into schema. Returns the JSON that finally parsed. Mapped
// statement payloads arrive from the mapping agent in any of these shapes.
func SmartParse(input string, schema interface{}) (string, error) {
	if err := json.Unmarshal([]byte(input), schema); err == nil {
		return input, nil
	}

	if repaired, err := RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return repaired, nil
		}
	}

	if converted, err := ParseHJSON(input); err == nil {
		if err := json.Unmarshal([]byte(converted), schema); err == nil {
			return converted, nil
		}
	}

	return "", fmt.Errorf("all parsing strategies failed for input")
}

// Package utils provides lenient parsing helpers for payloads we do not
// control: statistics-API JSON and human-maintained Hjson data files.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON defects (unquoted keys, single
// quotes, trailing commas, unclosed brackets) before decoding.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %v", err)
	}
	return repaired, nil
}

// DecodeLenient unmarshals raw into v, falling back to a repair pass when the
// strict decode fails. Upstream APIs occasionally emit malformed payloads on
// error pages; a repaired decode is preferable to losing the response.
func DecodeLenient(raw []byte, v interface{}) error {
	if err := json.Unmarshal(raw, v); err == nil {
		return nil
	}
	repaired, err := RepairJSON(string(raw))
	if err != nil {
		return fmt.Errorf("payload is not decodable JSON: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("repaired payload still undecodable: %w", err)
	}
	return nil
}

// ParseHJSONToStruct parses Hjson (comments, unquoted keys, optional commas)
// directly into a Go value. Used for human-maintained data files.
func ParseHJSONToStruct(hjsonData string, v interface{}) error {
	if err := hjson.Unmarshal([]byte(hjsonData), v); err != nil {
		return fmt.Errorf("hjson parse failed: %v", err)
	}
	return nil
}

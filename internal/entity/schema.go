package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildPaystubJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// The persistence layer validates serialized records against it before writing,
// so malformed extractions never land in storage.
func BuildPaystubJSONSchema() map[string]any {
	moneyProp := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"amount":   map[string]any{"type": "string", "pattern": `^-?\d+(\.\d+)?$`},
			"currency": map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		},
		"required": []string{"amount", "currency"},
	}
	confidenceProp := map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
	moneyFieldProp := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"value":      moneyProp,
			"confidence": confidenceProp,
			"source":     map[string]any{"type": "string", "enum": []string{"pattern", "ocr-heuristic", "default"}},
		},
		"required": []string{"value", "confidence", "source"},
	}
	// nil slices marshal as null, so deduction lists are nullable arrays
	deductionProp := map[string]any{
		"type": []string{"array", "null"},
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"name":       map[string]any{"type": "string", "minLength": 1},
				"amount":     moneyProp,
				"category":   map[string]any{"type": "string", "enum": []string{"tax", "benefit", "other"}},
				"confidence": confidenceProp,
			},
			"required": []string{"name", "amount", "category", "confidence"},
		},
	}
	dateProp := map[string]any{"type": "string"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"raw_text":           map[string]any{"type": "string"},
			"source_method":      map[string]any{"type": "string"},
			"provider":           map[string]any{"type": "string", "minLength": 1},
			"gross_pay":          moneyFieldProp,
			"net_pay":            moneyFieldProp,
			"ytd_gross_pay":      moneyProp,
			"ytd_net_pay":        moneyProp,
			"pay_period_start":   dateProp,
			"pay_period_end":     dateProp,
			"pay_date":           dateProp,
			"pay_frequency":      map[string]any{"type": "string", "enum": []string{"WEEKLY", "BIWEEKLY", "SEMIMONTHLY", "MONTHLY", "UNKNOWN"}},
			"employee_name":      map[string]any{"type": "string"},
			"employee_id":        map[string]any{"type": "string"},
			"employer_name":      map[string]any{"type": "string"},
			"tax_deductions":     deductionProp,
			"benefit_deductions": deductionProp,
			"other_deductions":   deductionProp,
			"overall_confidence": confidenceProp,
		},
		"required": []string{"raw_text", "provider", "pay_frequency", "overall_confidence"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

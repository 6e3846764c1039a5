package llm

// BuildCardJSONSchema returns the card extraction JSON-Schema (draft 2020-12
// subset) as a generic map. It is passed to the model as a structured output
// constraint and used locally to validate the repaired payload.
func BuildCardJSONSchema() map[string]any {
	props := map[string]any{
		"name":    nullableStringProp(),
		"title":   nullableStringProp(),
		"company": nullableStringProp(),
		"phones":  stringArrayProp(),
		"emails":  stringArrayProp(),
		"website": nullableStringProp(),
		"address": nullableStringProp(),
		"social": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"linkedin":  nullableStringProp(),
				"instagram": nullableStringProp(),
				"x":         nullableStringProp(),
				"facebook":  nullableStringProp(),
			},
			"required":             []string{"linkedin", "instagram", "x", "facebook"},
			"additionalProperties": false,
		},
		"notes": stringArrayProp(),
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required": []string{
			"name", "title", "company", "phones", "emails",
			"website", "address", "social", "notes",
		},
	}
}

func nullableStringProp() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

func stringArrayProp() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
}

package llm

import (
	"encoding/json"
	"fmt"
)

// PruneUnknownKeys removes keys outside the card schema from a repaired
// payload so that a model that invented fields (fax, department, …) does not
// fail strict validation. Known keys are never touched; missing keys are not
// filled in. Returns the pruned document and the dropped key names.
func PruneUnknownKeys(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, fmt.Errorf("prune: decode: %w", err)
	}

	allowed := map[string]struct{}{
		"name": {}, "title": {}, "company": {}, "phones": {}, "emails": {},
		"website": {}, "address": {}, "social": {}, "notes": {},
	}
	var dropped []string
	for k := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k)
		}
	}

	if soc, ok := m["social"].(map[string]any); ok {
		socAllowed := map[string]struct{}{
			"linkedin": {}, "instagram": {}, "x": {}, "facebook": {},
		}
		for k := range soc {
			if _, ok := socAllowed[k]; !ok {
				delete(soc, k)
				dropped = append(dropped, "social."+k)
			}
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("prune: encode: %w", err)
	}
	return out, dropped, nil
}

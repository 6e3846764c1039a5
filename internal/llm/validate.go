package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ekaraca/cardscan/internal/entity"
	"github.com/ekaraca/cardscan/internal/normalize"
)

// SchemaValidationError marks a payload that parses as JSON but does not
// match the card extraction schema. It is fatal to the structured path; no
// partial result is produced.
type SchemaValidationError struct {
	Cause error
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("card extraction does not match schema: %v", e.Cause)
}

func (e *SchemaValidationError) Unwrap() error { return e.Cause }

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

// cardPayload is the raw wire shape before normalization.
type cardPayload struct {
	Name    *string  `json:"name"`
	Title   *string  `json:"title"`
	Company *string  `json:"company"`
	Phones  []string `json:"phones"`
	Emails  []string `json:"emails"`
	Website *string  `json:"website"`
	Address *string  `json:"address"`
	Social  struct {
		LinkedIn  *string `json:"linkedin"`
		Instagram *string `json:"instagram"`
		X         *string `json:"x"`
		Facebook  *string `json:"facebook"`
	} `json:"social"`
	Notes []string `json:"notes"`
}

// ValidateAndNormalizeExtraction validates raw JSON against the card schema
// and routes every field through its normalizer. On schema failure it returns
// a *SchemaValidationError and no partial result.
func ValidateAndNormalizeExtraction(raw []byte) (*entity.CardExtraction, error) {
	if err := ValidateJSONAgainstSchema(BuildCardJSONSchema(), raw); err != nil {
		return nil, &SchemaValidationError{Cause: err}
	}
	var in cardPayload
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, &SchemaValidationError{Cause: err}
	}

	out := &entity.CardExtraction{
		Name:  normalize.Nullable(deref(in.Name)),
		Title: normalize.Nullable(deref(in.Title)),
	}
	if c := normalize.Nullable(deref(in.Company)); c != nil {
		v := normalize.CompanySuffix(*c)
		out.Company = &v
	}

	notes := append([]string(nil), in.Notes...)
	out.Phones = normalize.Phones(in.Phones, &notes)
	out.Emails = normalize.Emails(in.Emails)
	out.Website = normalize.Website(deref(in.Website))
	if a := normalize.Nullable(deref(in.Address)); a != nil {
		v := normalize.Address(*a)
		out.Address = &v
	}
	out.Social = entity.SocialLinks{
		LinkedIn:  normalize.SocialHandle(deref(in.Social.LinkedIn)),
		Instagram: normalize.SocialHandle(deref(in.Social.Instagram)),
		X:         normalize.SocialHandle(deref(in.Social.X)),
		Facebook:  normalize.SocialHandle(deref(in.Social.Facebook)),
	}
	out.Notes = normalize.UniqueStrings(notes)
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

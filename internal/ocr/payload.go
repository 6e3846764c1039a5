package ocr

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Payload is the uniform OCR output the pipeline consumes: the full decoded
// text plus its line segmentation.
type Payload struct {
	RawText string
	Lines   []string
}

// LineItem mirrors the block/line segmentation some native engines return.
type LineItem struct {
	BlockIndex int    `json:"blockIndex"`
	LineIndex  int    `json:"lineIndex"`
	Text       string `json:"text"`
}

// rawPayload covers the field spellings seen across native OCR bridges.
// Engines disagree on names, so every known spelling is declared here and
// resolved in one place instead of type-switching in business logic.
type rawPayload struct {
	RawText   *string    `json:"rawText"`
	Text      *string    `json:"text"`
	FullText  *string    `json:"fullText"`
	Lines     []string   `json:"lines"`
	LineItems []LineItem `json:"lineItems"`
	Blocks    []struct {
		Text string `json:"text"`
	} `json:"blocks"`
}

// DecodePayload decodes a raw OCR result object into a Payload.
// Text fields are tried in priority order: rawText, text, fullText, and
// finally the joined line segmentation. Lines come from "lines" when present,
// else from "lineItems", else from "blocks", else by splitting the text.
func DecodePayload(raw json.RawMessage) (Payload, error) {
	var rp rawPayload
	if err := json.Unmarshal(raw, &rp); err != nil {
		return Payload{}, fmt.Errorf("decode ocr payload: %w", err)
	}

	lines := rp.Lines
	if len(lines) == 0 && len(rp.LineItems) > 0 {
		lines = make([]string, 0, len(rp.LineItems))
		for _, it := range rp.LineItems {
			lines = append(lines, it.Text)
		}
	}
	if len(lines) == 0 && len(rp.Blocks) > 0 {
		lines = make([]string, 0, len(rp.Blocks))
		for _, b := range rp.Blocks {
			lines = append(lines, b.Text)
		}
	}

	var text string
	switch {
	case rp.RawText != nil:
		text = *rp.RawText
	case rp.Text != nil:
		text = *rp.Text
	case rp.FullText != nil:
		text = *rp.FullText
	case len(lines) > 0:
		text = strings.Join(lines, "\n")
	default:
		return Payload{}, fmt.Errorf("ocr payload has no recognizable text field")
	}

	return FromParts(text, lines), nil
}

// FromParts builds a Payload, deriving lines from the text when the engine
// returned none.
func FromParts(rawText string, lines []string) Payload {
	if len(lines) == 0 && rawText != "" {
		lines = strings.Split(rawText, "\n")
	}
	return Payload{RawText: rawText, Lines: lines}
}

package ocr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantText  string
		wantLines []string
	}{
		{
			name:      "rawText wins over text",
			raw:       `{"rawText":"a\nb","text":"ignored"}`,
			wantText:  "a\nb",
			wantLines: []string{"a", "b"},
		},
		{
			name:      "text field",
			raw:       `{"text":"a\nb"}`,
			wantText:  "a\nb",
			wantLines: []string{"a", "b"},
		},
		{
			name:      "fullText field",
			raw:       `{"fullText":"a"}`,
			wantText:  "a",
			wantLines: []string{"a"},
		},
		{
			name:      "lines array joined when no text",
			raw:       `{"lines":["a","b"]}`,
			wantText:  "a\nb",
			wantLines: []string{"a", "b"},
		},
		{
			name:      "lineItems segmentation",
			raw:       `{"lineItems":[{"blockIndex":0,"lineIndex":0,"text":"a"},{"blockIndex":0,"lineIndex":1,"text":"b"}]}`,
			wantText:  "a\nb",
			wantLines: []string{"a", "b"},
		},
		{
			name:      "blocks segmentation",
			raw:       `{"blocks":[{"text":"a"},{"text":"b"}]}`,
			wantText:  "a\nb",
			wantLines: []string{"a", "b"},
		},
		{
			name:      "explicit lines win over text split",
			raw:       `{"rawText":"a b","lines":["a","b"]}`,
			wantText:  "a b",
			wantLines: []string{"a", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePayload(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, got.RawText)
			assert.Equal(t, tt.wantLines, got.Lines)
		})
	}
}

func TestDecodePayloadErrors(t *testing.T) {
	_, err := DecodePayload(json.RawMessage(`{"confidence":0.9}`))
	assert.Error(t, err)

	_, err = DecodePayload(json.RawMessage(`not json`))
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	in := "Ahmet\tYılmaz\r\n\r\n\r\nAcme   Sanayi  \n-----\nKadıköy"
	got := Normalize(in)
	assert.Equal(t, "Ahmet Yılmaz\n\nAcme Sanayi\n\nKadıköy", got)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize(" \n \n "))
}

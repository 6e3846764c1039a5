package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		phone string
		note  string
	}{
		{name: "local with leading zero", raw: "0532 123 45 67", phone: "+905321234567"},
		{name: "already e164", raw: "+90 532 123 45 67", phone: "+905321234567"},
		{name: "country code without plus", raw: "90 532 123 45 67", phone: "+905321234567"},
		{name: "zero plus country code", raw: "090 532 123 45 67", phone: "+905321234567"},
		{name: "bare ten digits", raw: "5321234567", phone: "+905321234567"},
		{name: "punctuation variants", raw: "(0212) 555-11-22", phone: "+902125551122"},
		{name: "fax becomes note", raw: "Fax: 0212 555 11 22", note: "Fax: 0212 555 11 22"},
		{name: "faks spelling", raw: "Faks 0212 555 11 22", note: "Fax: 0212 555 11 22"},
		{name: "extension becomes note", raw: "Dahili: 105", note: "Dahili: 105"},
		{name: "ext abbreviation", raw: "ext. 4411", note: "Dahili: 4411"},
		{name: "too short is flagged", raw: "12345", note: "Phone?: 12345"},
		{name: "too long is flagged", raw: "0532 123 45 678 9", note: "Phone?: 0532 123 45 678 9"},
		{name: "empty", raw: "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Phone(tt.raw)
			assert.Equal(t, tt.phone, got.Phone)
			assert.Equal(t, tt.note, got.Note)
		})
	}
}

func TestPhoneIdempotent(t *testing.T) {
	first := Phone("0532 123 45 67")
	require.NotEmpty(t, first.Phone)
	second := Phone(first.Phone)
	assert.Equal(t, first.Phone, second.Phone)
	assert.Empty(t, second.Note)
}

func TestPhones(t *testing.T) {
	var notes []string
	got := Phones([]string{
		"0532 123 45 67",
		"+90 532 123 45 67", // duplicate after normalization
		"Fax: 0212 555 11 22",
		"0212 444 00 11",
		"abc",
	}, &notes)

	assert.Equal(t, []string{"+905321234567", "+902124440011"}, got)
	assert.Equal(t, []string{"Fax: 0212 555 11 22"}, notes)
}

package heuristic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ekaraca/cardscan/constants"
)

func TestParseCardText(t *testing.T) {
	raw := "Ahmet Yılmaz\n" +
		"Acme Sanayi A.S.\n" +
		"ahmet@acme.com.tr\n" +
		"0532 123 45 67\n" +
		"Organize Sanayi Bölgesi, No:5\n"

	got := ParseCardText(raw)

	assert.Equal(t, "Ahmet Yılmaz", got.CustomerName)
	assert.Equal(t, "ahmet@acme.com.tr", got.Email)
	assert.Equal(t, "0532 123 45 67", got.Phone1)
	assert.Equal(t, "Acme Sanayi A.S.\nOrganize Sanayi Bölgesi, No:5", got.Address)
	// "A.S." must not be mistaken for a domain
	assert.Empty(t, got.Website)
}

func TestParseCardTextEmpty(t *testing.T) {
	assert.Equal(t, ParseCardText(""), ParseCardText("  \n \t "))
	assert.Empty(t, ParseCardText("").CustomerName)
}

func TestParseCardTextNumericStartNeverName(t *testing.T) {
	got := ParseCardText("34710 Kadıköy\nAhmet Yılmaz\n")
	assert.Equal(t, "Ahmet Yılmaz", got.CustomerName)
	assert.Empty(t, got.Address)
}

func TestParseCardTextWebsite(t *testing.T) {
	got := ParseCardText("Acme\nwww.acme.com.tr\nhttps://acme.io/tr\n")
	assert.Equal(t, "Acme", got.CustomerName)
	assert.Equal(t, "www.acme.com.tr", got.Website)
	// both site lines are consumed, neither leaks into the address
	assert.Empty(t, got.Address)
}

func TestParseCardTextStackedPhones(t *testing.T) {
	got := ParseCardText("Ahmet\n0212 555 11 22\n0212 555 11 33\n")
	assert.Equal(t, "0212 555 11 22", got.Phone1)
	assert.Empty(t, got.Address)
}

func TestParseCardTextDuplicatePhonePrefixes(t *testing.T) {
	got := ParseCardText("Ahmet\n0532 123 45 67\n+90 532 123 45 67\n")
	assert.Equal(t, "0532 123 45 67", got.Phone1)
	// the +90 spelling of the same number is deduplicated away
	assert.Empty(t, got.Address)
}

func TestParseCardTextTruncation(t *testing.T) {
	long := strings.Repeat("a", 180)
	raw := "Ahmet\n" + long + "\n" + long + "\n" + long + "\n"
	got := ParseCardText(raw)
	assert.Equal(t, "Ahmet", got.CustomerName)
	assert.Len(t, []rune(got.Address), constants.MaxAddressLen)
}

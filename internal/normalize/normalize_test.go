package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowerTurkish(t *testing.T) {
	assert.Equal(t, "istanbul", LowerTurkish("İSTANBUL"))
	assert.Equal(t, "ısparta", LowerTurkish("ISPARTA"))
}

func TestCollapse(t *testing.T) {
	assert.Equal(t, "Acme Sanayi", Collapse("  Acme \t\n Sanayi  "))
	assert.Equal(t, "", Collapse(" \n\t "))
}

func TestNullable(t *testing.T) {
	assert.Nil(t, Nullable("   "))
	got := Nullable("  Acme  Sanayi ")
	require.NotNil(t, got)
	assert.Equal(t, "Acme Sanayi", *got)
}

func TestCompanySuffix(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Acme Sanayi A.S.", "Acme Sanayi A.Ş."},
		{"Acme Sanayi A.Ş.", "Acme Sanayi A.Ş."},
		{"Acme Sanayi a.ş", "Acme Sanayi A.Ş."},
		{"Acme Ltd Sti", "Acme Ltd. Şti."},
		{"Acme Limited Şti.", "Acme Ltd. Şti."},
		{"Kas Makina", "Kas Makina"}, // bare "as" without dots stays
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompanySuffix(tt.in), "input %q", tt.in)
	}
}

func TestCompanySuffixIdempotent(t *testing.T) {
	once := CompanySuffix("Acme Sanayi A.S.")
	assert.Equal(t, once, CompanySuffix(once))
}

func TestAddress(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Atatürk Mahallesi İnönü Caddesi No:5", "Atatürk Mah. İnönü Cad. No:5"},
		{"Çiçek Sok. No:3", "Çiçek Sk. No:3"},
		{"Gül mh. Lale cd, Kadıköy", "Gül Mah. Lale Cad., Kadıköy"},
		{"Mahmut Bey Cd Mahir Sk", "Mahmut Bey Cad. Mahir Sk."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Address(tt.in), "input %q", tt.in)
	}
}

func TestAddressIdempotent(t *testing.T) {
	once := Address("Atatürk Mahallesi İnönü Caddesi No:5")
	assert.Equal(t, once, Address(once))
}

func TestUniqueStrings(t *testing.T) {
	got := UniqueStrings([]string{"  Fax: 0212 ", "fax: 0212", "", "Dahili: 105", "FAX: 0212"})
	assert.Equal(t, []string{"Fax: 0212", "Dahili: 105"}, got)
}

func TestEmails(t *testing.T) {
	got := Emails([]string{
		" Ahmet@Acme.com.tr ",
		"ahmet@acme.com.tr",
		"not-an-email",
		"iki kelime@acme.com",
		"info@acme.com",
	})
	assert.Equal(t, []string{"ahmet@acme.com.tr", "info@acme.com"}, got)
}

func TestWebsite(t *testing.T) {
	assert.Nil(t, Website("  "))
	got := Website(" www.acme .com.tr ")
	require.NotNil(t, got)
	assert.Equal(t, "www.acme.com.tr", *got)
}

package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ekaraca/cardscan/constants"
	"github.com/ekaraca/cardscan/internal/entity"
)

func strp(s string) *string { return &s }

func TestToScanResult(t *testing.T) {
	x := &entity.CardExtraction{
		Name:    strp("Ahmet Yılmaz"),
		Company: strp("Acme Sanayi A.Ş."),
		Phones:  []string{"+905321234567", "+902125551122"},
		Emails:  []string{"ahmet@acme.com.tr", "info@acme.com.tr"},
		Website: strp("www.acme.com.tr"),
		Address: strp("Organize Sanayi Bölgesi No:5"),
	}
	got := ToScanResult(x)

	assert.Equal(t, "Ahmet Yılmaz", got.CustomerName)
	assert.Equal(t, "+905321234567", got.Phone1)
	assert.Equal(t, "ahmet@acme.com.tr", got.Email)
	assert.Equal(t, "Organize Sanayi Bölgesi No:5", got.Address)
	assert.Equal(t, "www.acme.com.tr", got.Website)
}

func TestToScanResultCompanyFallback(t *testing.T) {
	got := ToScanResult(&entity.CardExtraction{Company: strp("Acme Sanayi A.Ş.")})
	assert.Equal(t, "Acme Sanayi A.Ş.", got.CustomerName)
}

func TestToScanResultNil(t *testing.T) {
	assert.Equal(t, entity.ScanResult{}, ToScanResult(nil))
	assert.Equal(t, entity.ScanResult{}, ToScanResult(&entity.CardExtraction{}))
}

func TestToScanResultClampsLengths(t *testing.T) {
	got := ToScanResult(&entity.CardExtraction{
		Name:    strp(strings.Repeat("n", 300)),
		Address: strp(strings.Repeat("a", 600)),
		Website: strp(strings.Repeat("w", 150)),
	})
	assert.Len(t, got.CustomerName, constants.MaxCustomerNameLen)
	assert.Len(t, got.Address, constants.MaxAddressLen)
	assert.Len(t, got.Website, constants.MaxWebsiteLen)
}

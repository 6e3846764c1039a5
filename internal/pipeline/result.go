package pipeline

import (
	"github.com/ekaraca/cardscan/constants"
	"github.com/ekaraca/cardscan/internal/entity"
)

// ToScanResult projects a normalized extraction onto the simplified shape the
// contact form consumes. Total function: pure mapping, no validation, never
// fails. The customer name prefers the person's name and falls back to the
// company.
func ToScanResult(x *entity.CardExtraction) entity.ScanResult {
	var res entity.ScanResult
	if x == nil {
		return res
	}
	switch {
	case x.Name != nil:
		res.CustomerName = *x.Name
	case x.Company != nil:
		res.CustomerName = *x.Company
	}
	if len(x.Phones) > 0 {
		res.Phone1 = x.Phones[0]
	}
	if len(x.Emails) > 0 {
		res.Email = x.Emails[0]
	}
	if x.Address != nil {
		res.Address = *x.Address
	}
	if x.Website != nil {
		res.Website = *x.Website
	}
	return clampResult(res)
}

// clampResult enforces the field length limits that are part of the form
// contract.
func clampResult(res entity.ScanResult) entity.ScanResult {
	res.CustomerName = truncate(res.CustomerName, constants.MaxCustomerNameLen)
	res.Phone1 = truncate(res.Phone1, constants.MaxPhoneLen)
	res.Email = truncate(res.Email, constants.MaxEmailLen)
	res.Address = truncate(res.Address, constants.MaxAddressLen)
	res.Website = truncate(res.Website, constants.MaxWebsiteLen)
	return res
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

package constants

// Field truncation limits for ScanResult. These are part of the contract with
// the contact-creation form, not incidental buffer sizes.
const (
	MaxCustomerNameLen = 250
	MaxAddressLen      = 500
	MaxPhoneLen        = 100
	MaxEmailLen        = 100
	MaxWebsiteLen      = 100
)

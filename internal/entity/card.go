package entity

// SocialLinks holds per-network handles or profile URLs found on a card.
type SocialLinks struct {
	LinkedIn  *string `json:"linkedin"`
	Instagram *string `json:"instagram"`
	X         *string `json:"x"`
	Facebook  *string `json:"facebook"`
}

// CardExtraction is the validated, normalized record produced from one scan.
// It is transient: built fresh per scan attempt, never mutated in place and
// never persisted as-is.
//
// Invariants: array fields carry no duplicates; Phones holds only values of
// the form +90 followed by ten digits; fax numbers, extensions and
// unrecognizable phone-like tokens are demoted into Notes instead of being
// dropped.
type CardExtraction struct {
	Name    *string     `json:"name"`
	Title   *string     `json:"title"`
	Company *string     `json:"company"`
	Phones  []string    `json:"phones"`
	Emails  []string    `json:"emails"`
	Website *string     `json:"website"`
	Address *string     `json:"address"`
	Social  SocialLinks `json:"social"`
	Notes   []string    `json:"notes"`
}

// ScanResult is the simplified projection the contact form consumes.
// Empty string means absent; fields carry no validation of their own.
type ScanResult struct {
	CustomerName string `json:"customer_name,omitempty"`
	Phone1       string `json:"phone1,omitempty"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
	Website      string `json:"website,omitempty"`
}

// CandidateHints are ephemeral, heuristically detected substrings used only
// to assist the external extraction step. They are never validated and never
// trusted directly as output.
type CandidateHints struct {
	Phones       []string `json:"phones"`
	Emails       []string `json:"emails"`
	Websites     []string `json:"websites"`
	AddressLines []string `json:"address_lines"`
}

// Empty reports whether no candidate of any kind was found.
func (h CandidateHints) Empty() bool {
	return len(h.Phones) == 0 && len(h.Emails) == 0 &&
		len(h.Websites) == 0 && len(h.AddressLines) == 0
}

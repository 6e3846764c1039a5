package hints

import (
	"strings"

	"github.com/ekaraca/cardscan/internal/normalize"
)

// provinces is the set of Turkish province names, lowercased with Turkish
// casing. Lines carrying a recognizable province qualify as address-like.
var provinces = map[string]struct{}{
	"adana": {}, "adıyaman": {}, "afyonkarahisar": {}, "ağrı": {}, "aksaray": {},
	"amasya": {}, "ankara": {}, "antalya": {}, "ardahan": {}, "artvin": {},
	"aydın": {}, "balıkesir": {}, "bartın": {}, "batman": {}, "bayburt": {},
	"bilecik": {}, "bingöl": {}, "bitlis": {}, "bolu": {}, "burdur": {},
	"bursa": {}, "çanakkale": {}, "çankırı": {}, "çorum": {}, "denizli": {},
	"diyarbakır": {}, "düzce": {}, "edirne": {}, "elazığ": {}, "erzincan": {},
	"erzurum": {}, "eskişehir": {}, "gaziantep": {}, "giresun": {}, "gümüşhane": {},
	"hakkari": {}, "hatay": {}, "ığdır": {}, "isparta": {}, "istanbul": {},
	"izmir": {}, "kahramanmaraş": {}, "karabük": {}, "karaman": {}, "kars": {},
	"kastamonu": {}, "kayseri": {}, "kilis": {}, "kırıkkale": {}, "kırklareli": {},
	"kırşehir": {}, "kocaeli": {}, "konya": {}, "kütahya": {}, "malatya": {},
	"manisa": {}, "mardin": {}, "mersin": {}, "muğla": {}, "muş": {},
	"nevşehir": {}, "niğde": {}, "ordu": {}, "osmaniye": {}, "rize": {},
	"sakarya": {}, "samsun": {}, "şanlıurfa": {}, "siirt": {}, "sinop": {},
	"sivas": {}, "şırnak": {}, "tekirdağ": {}, "tokat": {}, "trabzon": {},
	"tunceli": {}, "uşak": {}, "van": {}, "yalova": {}, "yozgat": {},
	"zonguldak": {},
}

// containsProvince reports whether any word-ish token of s names a province.
func containsProvince(s string) bool {
	toks := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', ',', '.', '/', '|', '-', ':', ';', '(', ')':
			return true
		}
		return false
	})
	for _, tok := range toks {
		if _, ok := provinces[normalize.LowerTurkish(tok)]; ok {
			return true
		}
	}
	return false
}

// File: internal/payout/countries.go
package payout

import "strings"

// Country is a destination supported for payouts.
type Country struct {
	Name string `json:"name"`
	Flag string `json:"flag"`
}

var popularCountries = []Country{
	{"United States", "🇺🇸"},
	{"United Kingdom", "🇬🇧"},
	{"Canada", "🇨🇦"},
	{"India", "🇮🇳"},
}

var allCountries = []Country{
	{"Albania", "🇦🇱"}, {"Algeria", "🇩🇿"}, {"Angola", "🇦🇴"}, {"Antigua & Barbuda", "🇦🇬"},
	{"Argentina", "🇦🇷"}, {"Armenia", "🇦🇲"}, {"Australia", "🇦🇺"}, {"Austria", "🇦🇹"},
	{"Azerbaijan", "🇦🇿"}, {"Bahamas", "🇧🇸"}, {"Bahrain", "🇧🇭"}, {"Belgium", "🇧🇪"},
	{"Benin", "🇧🇯"}, {"Bhutan", "🇧🇹"}, {"Bosnia & Herzegovina", "🇧🇦"}, {"Botswana", "🇧🇼"},
	{"Brazil", "🇧🇷"}, {"Brunei", "🇧🇳"}, {"Bulgaria", "🇧🇬"}, {"Cambodia", "🇰🇭"},
	{"Chile", "🇨🇱"}, {"Colombia", "🇨🇴"}, {"Costa Rica", "🇨🇷"}, {"Croatia", "🇭🇷"},
	{"Cyprus", "🇨🇾"}, {"Czech Republic", "🇨🇿"}, {"Côte d'Ivoire", "🇨🇮"}, {"Denmark", "🇩🇰"},
	{"Dominican Republic", "🇩🇴"}, {"Ecuador", "🇪🇨"}, {"Egypt", "🇪🇬"}, {"El Salvador", "🇸🇻"},
	{"Estonia", "🇪🇪"}, {"Ethiopia", "🇪🇹"}, {"Finland", "🇫🇮"}, {"France", "🇫🇷"},
	{"Gabon", "🇬🇦"}, {"Gambia", "🇬🇲"}, {"Germany", "🇩🇪"}, {"Ghana", "🇬🇭"},
	{"Gibraltar", "🇬🇮"}, {"Greece", "🇬🇷"}, {"Guatemala", "🇬🇹"}, {"Guyana", "🇬🇾"},
	{"Hong Kong SAR China", "🇭🇰"}, {"Hungary", "🇭🇺"}, {"Iceland", "🇮🇸"}, {"Ireland", "🇮🇪"},
	{"Israel", "🇮🇱"}, {"Italy", "🇮🇹"}, {"Jamaica", "🇯🇲"}, {"Japan", "🇯🇵"},
	{"Jordan", "🇯🇴"}, {"Kenya", "🇰🇪"}, {"Kuwait", "🇰🇼"}, {"Laos", "🇱🇦"},
	{"Latvia", "🇱🇻"}, {"Liechtenstein", "🇱🇮"}, {"Lithuania", "🇱🇹"}, {"Luxembourg", "🇱🇺"},
	{"Macao SAR China", "🇲🇴"}, {"Madagascar", "🇲🇬"}, {"Malaysia", "🇲🇾"}, {"Malta", "🇲🇹"},
	{"Mauritius", "🇲🇺"}, {"Mexico", "🇲🇽"}, {"Moldova", "🇲🇩"}, {"Monaco", "🇲🇨"},
	{"Mongolia", "🇲🇳"}, {"Mozambique", "🇲🇿"}, {"Namibia", "🇳🇦"}, {"Netherlands", "🇳🇱"},
	{"New Zealand", "🇳🇿"}, {"Niger", "🇳🇪"}, {"North Macedonia", "🇲🇰"}, {"Norway", "🇳🇴"},
	{"Oman", "🇴🇲"}, {"Panama", "🇵🇦"}, {"Paraguay", "🇵🇾"}, {"Peru", "🇵🇪"},
	{"Philippines", "🇵🇭"}, {"Poland", "🇵🇱"}, {"Portugal", "🇵🇹"}, {"Qatar", "🇶🇦"},
	{"Romania", "🇷🇴"}, {"Rwanda", "🇷🇼"}, {"San Marino", "🇸🇲"}, {"Saudi Arabia", "🇸🇦"},
	{"Senegal", "🇸🇳"}, {"Serbia", "🇷🇸"}, {"Singapore", "🇸🇬"}, {"Slovakia", "🇸🇰"},
	{"Slovenia", "🇸🇮"}, {"South Africa", "🇿🇦"}, {"South Korea", "🇰🇷"}, {"Spain", "🇪🇸"},
	{"Sri Lanka", "🇱🇰"}, {"St. Lucia", "🇱🇨"}, {"Sweden", "🇸🇪"}, {"Switzerland", "🇨🇭"},
	{"Taiwan", "🇹🇼"}, {"Tanzania", "🇹🇿"}, {"Thailand", "🇹🇭"}, {"Trinidad & Tobago", "🇹🇹"},
	{"Tunisia", "🇹🇳"}, {"Türkiye", "🇹🇷"}, {"United Arab Emirates", "🇦🇪"}, {"United Kingdom", "🇬🇧"},
	{"United States", "🇺🇸"}, {"Uruguay", "🇺🇾"}, {"Vietnam", "🇻🇳"}, {"Zambia", "🇿🇲"},
}

// Countries is the selectable list: popular first, then the alphabetical list.
type Countries struct {
	Popular []Country `json:"popular"`
	All     []Country `json:"all"`
}

// ListCountries filters both lists by a case-insensitive substring of the name.
func ListCountries(query string) Countries {
	q := strings.ToLower(strings.TrimSpace(query))
	return Countries{Popular: filterCountries(popularCountries, q), All: filterCountries(allCountries, q)}
}

// IsSupported reports whether name appears in either list.
func IsSupported(name string) bool {
	for _, list := range [][]Country{popularCountries, allCountries} {
		for _, c := range list {
			if c.Name == name {
				return true
			}
		}
	}
	return false
}

func filterCountries(list []Country, q string) []Country {
	out := make([]Country, 0, len(list))
	for _, c := range list {
		if q == "" || strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

package bot

import "strings"

// Supported countries. Keyboard callback tokens are the codes themselves;
// free-typed names (English and Chinese, as shown on the keyboard) are
// accepted too.
const (
	CountryPH = "PH"
	CountryUS = "US"
)

var countryAliases = map[string]string{
	"ph":            CountryPH,
	"philippines":   CountryPH,
	"菲律宾":           CountryPH,
	"us":            CountryUS,
	"usa":           CountryUS,
	"united states": CountryUS,
	"美国":            CountryUS,
}

// CountryName returns the keyboard display name for a canonical code.
func CountryName(code string) string {
	switch code {
	case CountryPH:
		return "菲律宾"
	case CountryUS:
		return "美国"
	}
	return code
}

// NormalizeCountry maps raw text or a callback payload to a canonical country
// code. The second return is false when nothing matched; that is a normal
// outcome, not an error.
func NormalizeCountry(raw string) (string, bool) {
	code, ok := countryAliases[strings.ToLower(strings.TrimSpace(raw))]
	return code, ok
}

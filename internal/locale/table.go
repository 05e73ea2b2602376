package locale

// profiles maps ISO 639-3 detector codes to supported locale profiles.
// Built once; no runtime mutation path.
var profiles = map[string]Profile{
	"eng": {Code: "en", DisplayName: "English", WeatherCode: "en", DefaultTimezone: "Asia/Kolkata"},
	"hin": {Code: "hi", DisplayName: "Hindi", WeatherCode: "hi", DefaultTimezone: "Asia/Kolkata"},
	"tam": {Code: "ta", DisplayName: "Tamil", WeatherCode: "ta", DefaultTimezone: "Asia/Kolkata"},
	"deu": {Code: "de", DisplayName: "German", WeatherCode: "de", DefaultTimezone: "Europe/Berlin"},
	"fra": {Code: "fr", DisplayName: "French", WeatherCode: "fr", DefaultTimezone: "Europe/Paris"},
	"spa": {Code: "es", DisplayName: "Spanish", WeatherCode: "es", DefaultTimezone: "Europe/Madrid"},
	"jpn": {Code: "ja", DisplayName: "Japanese", WeatherCode: "ja", DefaultTimezone: "Asia/Tokyo"},
}

// defaultProfile is the English profile every fallback path lands on.
var defaultProfile = profiles["eng"]

// Default returns the English fallback profile.
func Default() Profile {
	return defaultProfile
}

// Supported reports whether a resolved profile code is in the table.
func Supported(code string) bool {
	for _, p := range profiles {
		if p.Code == code {
			return true
		}
	}
	return false
}

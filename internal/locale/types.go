package locale

import "time"

// Profile bundles the language/timezone/weather-code defaults resolved for
// a request. Profiles are static and read-only for the process lifetime.
type Profile struct {
	Code            string // short language code, e.g. "en"
	DisplayName     string // English display name of the language
	WeatherCode     string // OpenWeatherMap lang parameter
	DefaultTimezone string // IANA zone injected into handlers
}

// Location loads the profile's default timezone, falling back to UTC if
// the zone database does not know it.
func (p Profile) Location() *time.Location {
	loc, err := time.LoadLocation(p.DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

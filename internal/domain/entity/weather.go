package entity

// Outcomes of a current temperature lookup that are expected, not errors.
const (
	CityNotFound        = "City not found!"
	WeatherDataNotFound = "Weather data not found!"
)

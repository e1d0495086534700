package sites

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenWeatherMap_SearchURL(t *testing.T) {
	assert.Equal(t, "https://openweathermap.org/find?q=Berlin", OpenWeatherMap.SearchURL("Berlin"))
	assert.Equal(t, "https://openweathermap.org/find?q=New York", OpenWeatherMap.SearchURL("New York"),
		"city is interpolated without escaping")
}

func TestTimeAndDate_ForecastURL(t *testing.T) {
	site := TimeAndDate
	assert.Equal(t, "https://www.timeanddate.com/weather/germany/berlin/ext", site.ForecastURL("germany", "berlin"))

	site.BaseURL = "http://127.0.0.1:8080/"
	assert.Equal(t, "http://127.0.0.1:8080/weather/usa/newyork/ext", site.ForecastURL("usa", "newyork"))
}

func TestTimeAndDate_ColumnsAreDistinct(t *testing.T) {
	c := TimeAndDate.Columns
	seen := map[int]bool{}
	for _, i := range []int{c.Temperature, c.Weather, c.FeelsLike, c.Wind, c.Humidity,
		c.PrecipitationChance, c.PrecipitationAmount, c.UV, c.Sunrise, c.Sunset} {
		assert.False(t, seen[i], "column %d mapped twice", i)
		seen[i] = true
	}
}

package entity

// ForecastDay is one row of an extended forecast table. Every field is the
// trimmed cell text; a cell missing from the row leaves its field empty.
type ForecastDay struct {
	Day                 string `json:"day"`
	Temperature         string `json:"temperature"`
	Weather             string `json:"weather"`
	FeelsLike           string `json:"feels_like"`
	Wind                string `json:"wind"`
	Humidity            string `json:"humidity"`
	PrecipitationChance string `json:"precipitation_chance"`
	PrecipitationAmount string `json:"precipitation_amount"`
	UV                  string `json:"uv"`
	Sunrise             string `json:"sunrise"`
	Sunset              string `json:"sunset"`
}

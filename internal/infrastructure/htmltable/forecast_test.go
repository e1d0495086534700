package htmltable

import (
	"testing"

	"weather-scraper/internal/domain/entity"
	"weather-scraper/internal/infrastructure/sites"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extendedForecastHTML = `<table id="wt-ext" class="zebra tb-wt fw va-m tb-hover">
<thead>
	<tr><th>Day</th><th>&nbsp;</th><th>Temperature</th><th>Weather</th><th>Feels Like</th><th>Wind</th><th></th><th>Humidity</th><th>Chance</th><th>Amount</th><th>UV</th><th>Sunrise</th><th>Sunset</th></tr>
</thead>
<tbody>
	<tr>
		<th>Mon<br><span class="smaller soft">Oct 19</span></th>
		<td class="wt-ic"><img src="//c.tadst.com/gfx/w/svg/wt-18.svg" class="mtt"></td>
		<td> 14 / 7 °C </td>
		<td class="small">Passing clouds.</td>
		<td>12 °C</td>
		<td>13 km/h</td>
		<td class="sa"><span class="comp sa16" style="transform: rotate(232deg);">↑</span></td>
		<td>78%</td>
		<td>6%</td>
		<td>-</td>
		<td>1 (Low)</td>
		<td>7:34</td>
		<td>18:12</td>
	</tr>
	<tr>
		<th>Tue<br><span class="smaller soft">Oct 20</span></th>
		<td class="wt-ic"></td>
		<td>11 / 5 °C</td>
		<td>Light rain.</td>
		<td>9 °C</td>
		<td>20 km/h</td>
		<td class="sa"></td>
		<td>91%</td>
		<td>80%</td>
		<td>4.2 mm</td>
		<td>0 (Low)</td>
		<td>7:36</td>
		<td>18:10</td>
	</tr>
</tbody>
</table>`

func TestParseForecast_ExtendedTable(t *testing.T) {
	days, err := ParseForecast(extendedForecastHTML, sites.TimeAndDate.Columns)
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, entity.ForecastDay{
		Day:                 "Mon\nOct 19",
		Temperature:         "14 / 7 °C",
		Weather:             "Passing clouds.",
		FeelsLike:           "12 °C",
		Wind:                "13 km/h",
		Humidity:            "78%",
		PrecipitationChance: "6%",
		PrecipitationAmount: "-",
		UV:                  "1 (Low)",
		Sunrise:             "7:34",
		Sunset:              "18:12",
	}, days[0])

	assert.Equal(t, "Tue\nOct 20", days[1].Day)
	assert.Equal(t, "4.2 mm", days[1].PrecipitationAmount)
}

func TestParseForecast_ShortRowLeavesFieldsEmpty(t *testing.T) {
	table := `<table><tbody><tr><th>Wed</th><td></td><td>9 / 3 °C</td><td>Fog.</td></tr></tbody></table>`

	days, err := ParseForecast(table, sites.TimeAndDate.Columns)
	require.NoError(t, err)
	require.Len(t, days, 1)

	assert.Equal(t, "Wed", days[0].Day)
	assert.Equal(t, "9 / 3 °C", days[0].Temperature)
	assert.Equal(t, "Fog.", days[0].Weather)
	assert.Empty(t, days[0].FeelsLike)
	assert.Empty(t, days[0].Humidity)
	assert.Empty(t, days[0].Sunset)
}

func TestParseForecast_RowWithoutHeader(t *testing.T) {
	table := `<table><tr><td>icon</td><td>5 °C</td></tr></table>`

	days, err := ParseForecast(table, sites.TimeAndDate.Columns)
	require.NoError(t, err)
	require.Len(t, days, 1, "rows without an explicit tbody still count as body rows")
	assert.Empty(t, days[0].Day)
	assert.Equal(t, "5 °C", days[0].Temperature)
}

func TestParseForecast_EmptyBody(t *testing.T) {
	table := `<table id="wt-ext"><thead><tr><th>Day</th></tr></thead><tbody></tbody></table>`

	days, err := ParseForecast(table, sites.TimeAndDate.Columns)
	require.NoError(t, err)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestParseForecast_NoTable(t *testing.T) {
	_, err := ParseForecast(`<div>nothing here</div>`, sites.TimeAndDate.Columns)
	assert.Error(t, err)
}

func TestParseForecast_IgnoresNestedTables(t *testing.T) {
	table := `<table><tbody><tr><th>Thu</th><td></td><td><table><tbody><tr><td>inner</td></tr></tbody></table></td></tr></tbody></table>`

	days, err := ParseForecast(table, sites.TimeAndDate.Columns)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "inner", days[0].Temperature)
}

func TestCellAt(t *testing.T) {
	cells := []string{"a", "b"}

	assert.Equal(t, "b", cellAt(cells, 1))
	assert.Empty(t, cellAt(cells, 2))
	assert.Empty(t, cellAt(cells, -1))
	assert.Empty(t, cellAt(nil, 0))
}

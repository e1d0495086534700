// Package htmltable reads forecast rows out of captured table markup.
package htmltable

import (
	"fmt"
	"strings"

	"weather-scraper/internal/domain/entity"
	"weather-scraper/internal/infrastructure/sites"

	"golang.org/x/net/html"
)

// ParseForecast turns the outer HTML of a forecast table into one record per
// body row, in document order. Cells are addressed by position; a row shorter
// than the column map yields empty fields.
func ParseForecast(tableHTML string, cols sites.ColumnMap) ([]entity.ForecastDay, error) {
	doc, err := html.Parse(strings.NewReader(tableHTML))
	if err != nil {
		return nil, fmt.Errorf("parse forecast table: %w", err)
	}

	table := findNode(doc, "table")
	if table == nil {
		return nil, fmt.Errorf("parse forecast table: no <table> element")
	}

	days := make([]entity.ForecastDay, 0)
	for _, row := range bodyRows(table) {
		header, cells := rowCells(row)
		days = append(days, entity.ForecastDay{
			Day:                 header,
			Temperature:         cellAt(cells, cols.Temperature),
			Weather:             cellAt(cells, cols.Weather),
			FeelsLike:           cellAt(cells, cols.FeelsLike),
			Wind:                cellAt(cells, cols.Wind),
			Humidity:            cellAt(cells, cols.Humidity),
			PrecipitationChance: cellAt(cells, cols.PrecipitationChance),
			PrecipitationAmount: cellAt(cells, cols.PrecipitationAmount),
			UV:                  cellAt(cells, cols.UV),
			Sunrise:             cellAt(cells, cols.Sunrise),
			Sunset:              cellAt(cells, cols.Sunset),
		})
	}
	return days, nil
}

// findNode returns the first element named tag in depth-first order.
func findNode(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// bodyRows collects the rows of every tbody directly under table. Nested
// tables are not descended into.
func bodyRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for section := table.FirstChild; section != nil; section = section.NextSibling {
		if section.Type != html.ElementNode || section.Data != "tbody" {
			continue
		}
		for row := section.FirstChild; row != nil; row = row.NextSibling {
			if row.Type == html.ElementNode && row.Data == "tr" {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// rowCells returns the text of the first th in the row and the texts of its td cells.
func rowCells(row *html.Node) (string, []string) {
	var header string
	var haveHeader bool
	var cells []string

	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "th":
			if !haveHeader {
				header = strings.TrimSpace(textContent(c))
				haveHeader = true
			}
		case "td":
			cells = append(cells, strings.TrimSpace(textContent(c)))
		}
	}
	return header, cells
}

func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

// textContent joins the text below n; <br> becomes a newline the way the
// browser's innerText renders it. Script and style bodies are skipped.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			return
		case html.ElementNode:
			if isOneOf(n.Data, "script", "style") {
				return
			}
			if n.Data == "br" {
				sb.WriteString("\n")
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func isOneOf(s string, candidates ...string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}

package utils

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
)

const (
	colorRank1 = "#d73027"
	colorRank2 = "#f46d43"
	colorRank3 = "#fee08b"
	colorRank4 = "#abdda4"
	colorRank5 = "#66c2a5"
	colorRank6 = "#1a9850"
)

var chartBorderStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawDailyCostChart renders the daily spend series as a bar chart, most
// expensive days in the hottest colors.
func DrawDailyCostChart(accountID string, dailyCosts []model.DailyCost) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" DAILY COST HISTORY"))
	fmt.Printf(" Account ID: %s\n", text.FgBlue.Sprint(accountID))

	bc := barchart.New(130, 20)

	colors := assignRankedColors(dailyCosts)

	for idx, day := range dailyCosts {
		bc.Push(barchart.BarData{
			Label: day.Date[5:], // MM-DD
			Values: []barchart.BarValue{
				{
					Value: day.Amount,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(colors[idx])),
				},
			},
		})
	}

	bc.Draw()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, chartBorderStyle.Render(bc.View())))
}

// assignRankedColors maps each day to a color by its cost rank, hottest
// color for the highest spend.
func assignRankedColors(dailyCosts []model.DailyCost) []string {
	palette := []string{colorRank1, colorRank2, colorRank3, colorRank4, colorRank5, colorRank6}

	colors := make([]string, len(dailyCosts))
	for idx, day := range dailyCosts {
		rank := 0
		for _, other := range dailyCosts {
			if other.Amount > day.Amount {
				rank++
			}
		}
		if rank >= len(palette) {
			rank = len(palette) - 1
		}
		colors[idx] = palette[rank]
	}

	return colors
}

package services

import (
	"bytes"
	"fmt"

	"github.com/terraincognita07/mesflow/internal/chart"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartImageWidth  = 960
	chartImageHeight = 480
	chartBarWidth    = 48
)

var chartBarFill = drawing.Color{R: 54, G: 162, B: 235, A: 179}
var chartBarStroke = drawing.Color{R: 54, G: 162, B: 235, A: 255}

// RenderMonthlyOrdersPNG draws the monthly series as a PNG bar chart with the
// same title and colors as the dashboard chart. The y range always starts at
// zero.
func RenderMonthlyOrdersPNG(series MonthlySeries) ([]byte, error) {
	if len(series.Labels) == 0 {
		return nil, fmt.Errorf("%w: series has no months", ErrInvalidInput)
	}

	bars := make([]gochart.Value, 0, len(series.Labels))
	maxValue := 1.0
	for index, label := range series.Labels {
		value := 0.0
		if index < len(series.Values) {
			value = series.Values[index]
		}
		if value > maxValue {
			maxValue = value
		}
		bars = append(bars, gochart.Value{
			Label: label,
			Value: value,
			Style: gochart.Style{
				FillColor:   chartBarFill,
				StrokeColor: chartBarStroke,
				StrokeWidth: 1,
			},
		})
	}

	graph := gochart.BarChart{
		Title:      chart.Title,
		TitleStyle: gochart.Style{FontSize: 16},
		Width:      chartImageWidth,
		Height:     chartImageHeight,
		BarWidth:   chartBarWidth,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: maxValue},
		},
		Bars: bars,
	}

	var output bytes.Buffer
	if err := graph.Render(gochart.PNG, &output); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return output.Bytes(), nil
}

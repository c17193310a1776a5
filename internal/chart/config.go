package chart

const (
	TypeBar      = "bar"
	DatasetLabel = "Number of Orders"
	Title        = "Monthly Orders Overview"

	fillColor    = "rgba(54, 162, 235, 0.7)"
	borderColor  = "rgba(54, 162, 235, 1)"
	borderWidth  = 1
	borderRadius = 6
	titleSize    = 16
	titleWeight  = "bold"
	tooltipMode  = "index"
	yTickStep    = 1
)

// Config mirrors the subset of the Chart.js configuration object the orders
// chart uses. Field names follow the Chart.js JSON keys.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string    `json:"label"`
	Data            []any     `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
	BorderRadius    int       `json:"borderRadius"`
}

type Options struct {
	Responsive bool    `json:"responsive"`
	Plugins    Plugins `json:"plugins"`
	Scales     Scales  `json:"scales"`
}

type Plugins struct {
	Legend  Legend  `json:"legend"`
	Title   Heading `json:"title"`
	Tooltip Tooltip `json:"tooltip"`
}

type Legend struct {
	Display bool `json:"display"`
}

type Heading struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
	Font    Font   `json:"font"`
}

type Font struct {
	Size   int    `json:"size"`
	Weight string `json:"weight"`
}

type Tooltip struct {
	Enabled   bool   `json:"enabled"`
	Mode      string `json:"mode"`
	Intersect bool   `json:"intersect"`
}

type Scales struct {
	Y Axis `json:"y"`
	X Axis `json:"x"`
}

type Axis struct {
	BeginAtZero bool  `json:"beginAtZero,omitempty"`
	Ticks       Ticks `json:"ticks"`
}

// Ticks uses pointers so that an explicit false or zero still reaches the
// library instead of being dropped.
type Ticks struct {
	StepSize *float64 `json:"stepSize,omitempty"`
	AutoSkip *bool    `json:"autoSkip,omitempty"`
}

// NewConfig builds the bar chart request for the given series. labels and
// values are passed through as-is: no sorting, no length reconciliation.
func NewConfig(labels []string, values []any) Config {
	step := float64(yTickStep)
	autoSkip := false

	return Config{
		Type: TypeBar,
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Label:           DatasetLabel,
				Data:            values,
				BackgroundColor: fillColor,
				BorderColor:     borderColor,
				BorderWidth:     borderWidth,
				BorderRadius:    borderRadius,
			}},
		},
		Options: Options{
			Responsive: true,
			Plugins: Plugins{
				Legend: Legend{Display: false},
				Title: Heading{
					Display: true,
					Text:    Title,
					Font:    Font{Size: titleSize, Weight: titleWeight},
				},
				Tooltip: Tooltip{
					Enabled:   true,
					Mode:      tooltipMode,
					Intersect: false,
				},
			},
			Scales: Scales{
				Y: Axis{
					BeginAtZero: true,
					Ticks:       Ticks{StepSize: &step},
				},
				X: Axis{
					Ticks: Ticks{AutoSkip: &autoSkip},
				},
			},
		},
	}
}

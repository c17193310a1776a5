package chart

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Attributes holds the serialized values for the data-labels and data-data
// attributes of the chart canvas.
type Attributes struct {
	Labels string
	Data   string
}

// EncodeAttributes serializes a series for the dashboard template. Nil
// slices are written as empty arrays.
func EncodeAttributes(labels []string, values []float64) (Attributes, error) {
	if labels == nil {
		labels = []string{}
	}
	if values == nil {
		values = []float64{}
	}

	encodedLabels, err := json.Marshal(labels)
	if err != nil {
		return Attributes{}, fmt.Errorf("encode labels: %w", err)
	}
	encodedValues, err := json.Marshal(values)
	if err != nil {
		return Attributes{}, fmt.Errorf("encode values: %w", err)
	}
	return Attributes{Labels: string(encodedLabels), Data: string(encodedValues)}, nil
}

// MarshalConfig returns the JSON form of config as the charting library
// expects it.
func MarshalConfig(config Config) ([]byte, error) {
	return json.Marshal(config)
}

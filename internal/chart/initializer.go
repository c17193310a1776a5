// Package chart turns the two data attributes rendered on the dashboard
// canvas into a Chart.js bar chart request.
package chart

import (
	"fmt"

	"github.com/goccy/go-json"
)

const (
	ElementID       = "ordersChart"
	LabelsAttribute = "labels"
	DataAttribute   = "data"

	emptyArrayLiteral = "[]"
)

// Surface is the host's 2D drawing context handle. It is opaque to this
// package and handed to the Library untouched.
type Surface any

type Document interface {
	ElementByID(id string) (Element, bool)
}

type Element interface {
	// DataAttribute returns the value of data-<name>, or "" when the
	// attribute is not set.
	DataAttribute(name string) string
	Context2D() (Surface, error)
}

// Library is the external charting library. Render is expected to take
// ownership of the surface; nothing flows back.
type Library interface {
	Render(surface Surface, config Config) error
}

// Initialize locates the orders chart element in doc and submits a bar chart
// request to library. A document without the element is not an error.
func Initialize(doc Document, library Library) error {
	element, ok := doc.ElementByID(ElementID)
	if !ok {
		return nil
	}

	labels, values, err := ReadSeries(element)
	if err != nil {
		return err
	}

	surface, err := element.Context2D()
	if err != nil {
		return fmt.Errorf("get 2d context: %w", err)
	}
	return library.Render(surface, NewConfig(labels, values))
}

// ReadSeries decodes the labels and values attributes of element. Values keep
// whatever JSON elements the attribute holds, nulls and strings included.
func ReadSeries(element Element) ([]string, []any, error) {
	rawLabels := attributeOrEmptyArray(element.DataAttribute(LabelsAttribute))
	rawValues := attributeOrEmptyArray(element.DataAttribute(DataAttribute))

	labels := make([]string, 0)
	if err := json.Unmarshal([]byte(rawLabels), &labels); err != nil {
		return nil, nil, fmt.Errorf("decode data-%s: %w", LabelsAttribute, err)
	}

	values := make([]any, 0)
	if err := json.Unmarshal([]byte(rawValues), &values); err != nil {
		return nil, nil, fmt.Errorf("decode data-%s: %w", DataAttribute, err)
	}
	return labels, values, nil
}

func attributeOrEmptyArray(raw string) string {
	if raw == "" {
		return emptyArrayLiteral
	}
	return raw
}

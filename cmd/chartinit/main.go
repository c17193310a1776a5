//go:build js && wasm

// Command chartinit is compiled to WebAssembly and loaded by the dashboard
// page. It draws the orders chart once the document has loaded.
package main

import (
	"errors"
	"syscall/js"

	"github.com/terraincognita07/mesflow/internal/chart"
)

func main() {
	document := js.Global().Get("document")

	var onLoad js.Func
	onLoad = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer onLoad.Release()
		if err := chart.Initialize(domDocument{value: document}, chartJS{}); err != nil {
			reportError(err)
		}
		return nil
	})

	if document.Get("readyState").String() == "loading" {
		document.Call("addEventListener", "DOMContentLoaded", onLoad, map[string]any{"once": true})
	} else {
		onLoad.Invoke()
	}

	select {}
}

type domDocument struct {
	value js.Value
}

func (doc domDocument) ElementByID(id string) (chart.Element, bool) {
	element := doc.value.Call("getElementById", id)
	if element.IsNull() || element.IsUndefined() {
		return nil, false
	}
	return domElement{value: element}, true
}

type domElement struct {
	value js.Value
}

func (element domElement) DataAttribute(name string) string {
	value := element.value.Get("dataset").Get(name)
	if value.IsUndefined() || value.IsNull() {
		return ""
	}
	return value.String()
}

func (element domElement) Context2D() (chart.Surface, error) {
	if element.value.Get("getContext").IsUndefined() {
		return nil, errors.New("element has no drawing context")
	}
	context := element.value.Call("getContext", "2d")
	if context.IsNull() {
		return nil, errors.New("2d context unavailable")
	}
	return context, nil
}

type chartJS struct{}

func (chartJS) Render(surface chart.Surface, config chart.Config) error {
	constructor := js.Global().Get("Chart")
	if constructor.IsUndefined() {
		return errors.New("global Chart constructor is not defined")
	}

	raw, err := chart.MarshalConfig(config)
	if err != nil {
		return err
	}
	options := js.Global().Get("JSON").Call("parse", string(raw))
	constructor.New(surface, options)
	return nil
}

func reportError(err error) {
	jsErr := js.Global().Get("Error").New(err.Error())
	if report := js.Global().Get("reportError"); report.Type() == js.TypeFunction {
		report.Invoke(jsErr)
		return
	}
	js.Global().Get("console").Call("error", jsErr)
}

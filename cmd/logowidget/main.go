//go:build js && wasm

// Package main is the logo widget compiled to WebAssembly. It reads the payload
// injected by logolink serve and attaches the widget to the page logo.
package main

import (
	"syscall/js"

	"go.trai.ch/logolink/internal/adapters/jsdom"
	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/engine/widget"
)

func main() {
	if err := mount(); err != nil {
		js.Global().Get("console").Call("debug", "logolink: "+err.Error())
		return
	}

	// Listeners are Go callbacks; the runtime has to stay up for the page.
	select {}
}

func mount() error {
	win := jsdom.Global()

	script, ok := win.Document().QuerySelector("#" + domain.PayloadElementID)
	if !ok {
		return domain.ErrInvalidPayload
	}
	raw := script.(*jsdom.Element).Text()

	cfg, err := domain.ParsePayload([]byte(raw))
	if err != nil {
		return err
	}

	return widget.New(win).Mount(cfg)
}

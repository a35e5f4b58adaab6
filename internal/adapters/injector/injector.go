// Package injector writes the widget payload and bootstrap tags into HTML pages.
package injector

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io"

	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
)

var _ ports.ScriptInjector = (*Injector)(nil)

const snippetText = `<script type="application/json" id="{{.ID}}">{{.Config}}</script>
<script src="{{.WasmExec}}"></script>
<script src="{{.Bootstrap}}" data-wasm="{{.Wasm}}"></script>
`

var snippet = template.Must(template.New("snippet").Parse(snippetText))

type snippetData struct {
	ID        string
	Config    template.JS
	WasmExec  string
	Bootstrap string
	Wasm      string
}

// Injector renders the widget snippet before the closing body tag.
type Injector struct{}

// New creates an Injector.
func New() *Injector {
	return &Injector{}
}

// Inject returns page with the snippet for p inserted before the last </body>.
// scriptBase must end with a slash.
// It reports false and returns page unchanged when the page has no </body>.
func (i *Injector) Inject(page []byte, p domain.Payload, scriptBase string) ([]byte, bool, error) {
	offset, ok := lastBodyClose(page)
	if !ok {
		return page, false, nil
	}

	// json.Marshal escapes <, > and & so the payload cannot close the script element.
	config, err := json.Marshal(p)
	if err != nil {
		return nil, false, zerr.Wrap(err, domain.ErrInjectionFailed.Error())
	}

	var buf bytes.Buffer
	buf.Grow(len(page) + len(config) + len(snippetText))
	buf.Write(page[:offset])
	if err := snippet.Execute(&buf, snippetData{
		ID:        domain.PayloadElementID,
		Config:    template.JS(config), //nolint:gosec // HTML-safe JSON from json.Marshal
		WasmExec:  scriptBase + domain.WasmExecFile,
		Bootstrap: scriptBase + domain.BootstrapFile,
		Wasm:      scriptBase + domain.WidgetWasmFile,
	}); err != nil {
		return nil, false, zerr.Wrap(err, domain.ErrInjectionFailed.Error())
	}
	buf.Write(page[offset:])

	return buf.Bytes(), true, nil
}

// lastBodyClose returns the byte offset of the last </body> end tag.
// Tokenizing skips look-alikes inside scripts, comments and attribute values.
func lastBodyClose(page []byte) (int, bool) {
	z := html.NewTokenizer(bytes.NewReader(page))
	offset, found := -1, false
	pos := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() != io.EOF {
				return 0, false
			}
			break
		}
		raw := len(z.Raw())
		if tt == html.EndTagToken {
			if name, _ := z.TagName(); string(name) == "body" {
				offset, found = pos, true
			}
		}
		pos += raw
	}
	return offset, found
}

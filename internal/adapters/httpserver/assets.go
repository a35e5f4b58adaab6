package httpserver

import (
	"bytes"
	"embed"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/logolink/internal/core/domain"
)

//go:embed assets/bootstrap.js
var embedded embed.FS

// assetHandler serves the widget files below the script base path.
func (s *Server) assetHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch name := r.URL.Path; name {
		case domain.BootstrapFile:
			data, err := embedded.ReadFile("assets/" + domain.BootstrapFile)
			if err != nil {
				s.internalError(w, err)
				return
			}
			w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
			http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
		case domain.WidgetWasmFile, domain.WasmExecFile:
			if s.cfg.AssetsDir == "" {
				http.NotFound(w, r)
				return
			}
			if name == domain.WidgetWasmFile {
				w.Header().Set("Content-Type", "application/wasm")
			}
			http.ServeFile(w, r, filepath.Join(s.cfg.AssetsDir, name))
		default:
			http.NotFound(w, r)
		}
	})
}

// handleConfig serves the current payload. A closed gate answers 204.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	p, ok, err := s.svc.Payload(r.Context(), nil)
	if err != nil {
		s.internalError(w, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	body, err := json.Marshal(p)
	if err != nil {
		s.internalError(w, err)
		return
	}

	etag := `"` + strconv.FormatUint(xxhash.Sum64(body), 16) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

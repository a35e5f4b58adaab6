package httpserver

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"
)

// conditionalHeaders are dropped from GET requests. The injected payload
// depends on the settings, so the site's validators cannot vouch for the page.
var conditionalHeaders = []string{"If-Modified-Since", "If-None-Match"}

// injectMiddleware rewrites successful HTML responses through the service.
// Everything else is streamed unchanged.
func (s *Server) injectMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		r = r.Clone(r.Context())
		for _, k := range conditionalHeaders {
			r.Header.Del(k)
		}

		iw := &injectWriter{ResponseWriter: w}
		next.ServeHTTP(iw, r)

		if !iw.buffering {
			return
		}

		page := iw.buf.Bytes()
		out, err := s.svc.RenderPage(r.Context(), page)
		if err != nil {
			s.logger.Error(err)
			out = page
		}

		h := w.Header()
		if !bytes.Equal(out, page) {
			h.Del("ETag")
			h.Del("Last-Modified")
			h.Set("Cache-Control", "no-cache")
		}
		h.Set("Content-Length", strconv.Itoa(len(out)))
		w.WriteHeader(iw.status)
		_, _ = w.Write(out)
	})
}

// injectWriter decides at header time whether the body is buffered.
type injectWriter struct {
	http.ResponseWriter
	buf         bytes.Buffer
	status      int
	wroteHeader bool
	buffering   bool
}

func (w *injectWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = code
	w.buffering = code == http.StatusOK && isPlainHTML(w.Header())
	if !w.buffering {
		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *injectWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(p))
		}
		w.WriteHeader(http.StatusOK)
	}
	if w.buffering {
		return w.buf.Write(p)
	}
	return w.ResponseWriter.Write(p)
}

// Flush is a no-op while buffering.
func (w *injectWriter) Flush() {
	if w.buffering {
		return
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isPlainHTML(h http.Header) bool {
	if h.Get("Content-Encoding") != "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(h.Get("Content-Type"))
	return err == nil && mt == "text/html"
}

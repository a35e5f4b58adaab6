package httpserver

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"time"

	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxFormBytes bounds admin request bodies.
const maxFormBytes = 64 << 10

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type selectorResponse struct {
	Cached    bool       `json:"cached"`
	Selector  string     `json:"selector,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type probeRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	settings, err := s.svc.Settings()
	if err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	in, err := decodeSettings(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	saved, err := s.svc.SaveSettings(r.Context(), in)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: vErr.Error(), Field: vErr.Field})
			return
		}
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleResetSettings(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ResetSettings(r.Context()); err != nil {
		s.internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProbe(w http.ResponseWriter, r *http.Request) {
	var req probeRequest
	if isJSON(r) {
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed JSON body"})
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed form body"})
			return
		}
		req.URL = r.PostForm.Get("url")
	}

	writeJSON(w, http.StatusOK, s.svc.Probe(r.Context(), req.URL))
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	evt, err := domain.ParseLifecycleEvent(r.PathValue("event"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	// ready and settings-saved are raised by logolink itself.
	if evt != domain.EventThemeChanged && evt != domain.EventCustomizerSaved {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "event " + string(evt) + " cannot be triggered over HTTP"})
		return
	}

	s.svc.Publish(r.Context(), evt)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSelector(w http.ResponseWriter, _ *http.Request) {
	entry, ok := s.svc.CachedSelector()
	if !ok {
		writeJSON(w, http.StatusOK, selectorResponse{})
		return
	}
	expires := entry.ExpiresAt.UTC()
	writeJSON(w, http.StatusOK, selectorResponse{Cached: true, Selector: entry.Value, ExpiresAt: &expires})
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	s.logger.Error(err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

// decodeSettings reads the settings from a JSON body or the admin form.
// Form fields use the option keys.
func decodeSettings(w http.ResponseWriter, r *http.Request) (domain.Settings, error) {
	var s domain.Settings
	if isJSON(r) {
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes)).Decode(&s); err != nil {
			return domain.Settings{}, zerr.Wrap(err, "malformed JSON body")
		}
		return s, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "malformed form body")
	}
	f := r.PostForm
	return domain.Settings{
		Mode:         domain.ClickMode(f.Get(domain.OptionRightClickType)),
		AssetsURL:    f.Get(domain.OptionAssetsURL),
		CustomURL:    f.Get(domain.OptionCustomURL),
		CustomText:   f.Get(domain.OptionCustomText),
		Presentation: domain.Presentation(f.Get(domain.OptionPresentation)),
	}, nil
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

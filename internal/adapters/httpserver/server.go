// Package httpserver fronts a site, injects the logo widget into its pages
// and serves the admin endpoints on a separate listener.
package httpserver

import (
	"context"
	"crypto/subtle"
	"errors"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Service is the application surface the server exposes over HTTP.
type Service interface {
	Settings() (domain.Settings, error)
	SaveSettings(ctx context.Context, s domain.Settings) (domain.Settings, error)
	ResetSettings(ctx context.Context) error
	Probe(ctx context.Context, rawURL string) domain.ProbeResult
	Publish(ctx context.Context, evt domain.LifecycleEvent)
	CachedSelector() (domain.CachedSelector, bool)
	Payload(ctx context.Context, page []byte) (domain.Payload, bool, error)
	RenderPage(ctx context.Context, page []byte) ([]byte, error)
}

// Server is the HTTP front of a site.
type Server struct {
	cfg    domain.SiteConfig
	svc    Service
	logger ports.Logger
	site   http.Handler
}

// New creates a Server for cfg. The site is proxied when an upstream is
// configured and served from the root directory otherwise.
func New(cfg domain.SiteConfig, svc Service, logger ports.Logger) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		svc:    svc,
		logger: logger,
	}

	if cfg.Upstream != "" {
		target, err := url.Parse(cfg.Upstream)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "upstream", cfg.Upstream)
		}
		s.site = s.newProxy(target)
		return s, nil
	}

	root := cfg.Root
	if root == "" {
		root = "."
	}
	s.site = http.FileServer(http.Dir(root))
	return s, nil
}

func (s *Server) newProxy(target *url.URL) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			// The transport negotiates gzip itself and hands back a plain body.
			pr.Out.Header.Del("Accept-Encoding")
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			s.logger.Error(zerr.With(zerr.Wrap(err, "upstream request failed"), "path", r.URL.Path))
			w.WriteHeader(http.StatusBadGateway)
		},
	}
}

// Handler returns the public handler: the site with the widget injected and
// the widget's own files. The admin endpoints are not reachable through it.
func (s *Server) Handler() http.Handler {
	base := s.cfg.ScriptBasePath

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+base+domain.ConfigFile, s.handleConfig)
	mux.Handle("GET "+base, http.StripPrefix(base, s.assetHandler()))
	mux.Handle("/", s.injectMiddleware(s.site))
	return mux
}

// AdminHandler returns the handler of the admin endpoints. When an admin
// token is configured every request must present it as a bearer credential.
func (s *Server) AdminHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/settings", s.handleGetSettings)
	mux.HandleFunc("POST /admin/settings", s.handleSaveSettings)
	mux.HandleFunc("DELETE /admin/settings", s.handleResetSettings)
	mux.HandleFunc("POST /admin/probe", s.handleProbe)
	mux.HandleFunc("POST /admin/events/{event}", s.handleEvent)
	mux.HandleFunc("GET /admin/selector", s.handleSelector)
	return s.requireToken(mux)
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	if s.cfg.AdminToken == "" {
		return next
	}
	want := []byte("Bearer " + s.cfg.AdminToken)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := []byte(r.Header.Get("Authorization"))
		if subtle.ConstantTimeCompare(got, want) != 1 {
			w.Header().Set("WWW-Authenticate", `Bearer realm="logolink"`)
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListenAndServe listens on the site and admin addresses and serves both
// until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	siteLn, err := lc.Listen(ctx, "tcp", s.cfg.ListenAddr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", s.cfg.ListenAddr)
	}
	adminLn, err := lc.Listen(ctx, "tcp", s.cfg.AdminListenAddr)
	if err != nil {
		_ = siteLn.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", s.cfg.AdminListenAddr)
	}
	return s.Serve(ctx, siteLn, adminLn)
}

// Serve serves the site on siteLn and the admin endpoints on adminLn until
// ctx is done, then shuts both down gracefully.
func (s *Server) Serve(ctx context.Context, siteLn, adminLn net.Listener) error {
	s.logger.Info("serving site on http://" + siteLn.Addr().String())
	s.logger.Info("serving admin on http://" + adminLn.Addr().String())

	g, gctx := errgroup.WithContext(ctx)
	serveOn(ctx, gctx, g, s.Handler(), siteLn)
	serveOn(ctx, gctx, g, s.AdminHandler(), adminLn)
	return g.Wait()
}

func serveOn(ctx, gctx context.Context, g *errgroup.Group, h http.Handler, ln net.Listener) {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", ln.Addr().String())
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}

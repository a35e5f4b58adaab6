package prober_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/logolink/internal/adapters/prober"
	"go.trai.ch/logolink/internal/core/domain"
)

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

func newMockClient(handler func(req *http.Request) (*http.Response, error)) *http.Client {
	return &http.Client{
		Transport: &MockRoundTripper{RoundTripFunc: handler},
	}
}

func respond(code int) func(*http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: code,
			Body:       io.NopCloser(strings.NewReader("ok")),
			Header:     make(http.Header),
			Request:    req,
		}, nil
	}
}

func TestProber_InputValidation(t *testing.T) {
	called := false
	p := prober.NewProberWithClient(newMockClient(func(req *http.Request) (*http.Response, error) {
		called = true
		return respond(http.StatusOK)(req)
	}), domain.ProbeTimeout)

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"empty", "", domain.ProbeMsgEmptyURL},
		{"blank", "   ", domain.ProbeMsgEmptyURL},
		{"relative", "portfolio", domain.ProbeMsgBadURL},
		{"root relative", "/about", domain.ProbeMsgBadURL},
		{"bad scheme", "ftp://example.com", domain.ProbeMsgBadURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Probe(t.Context(), tt.url)
			assert.Equal(t, domain.ProbeError, res.Status)
			assert.Equal(t, tt.want, res.Message)
		})
	}
	assert.False(t, called, "invalid input never reaches the network")
}

func TestProber_AnyResponseIsSuccess(t *testing.T) {
	for _, code := range []int{http.StatusOK, http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			var gotMethod, gotUA string
			p := prober.NewProberWithClient(newMockClient(func(req *http.Request) (*http.Response, error) {
				gotMethod = req.Method
				gotUA = req.Header.Get("User-Agent")
				return respond(code)(req)
			}), domain.ProbeTimeout)

			res := p.Probe(t.Context(), "https://example.com/portfolio")

			assert.Equal(t, domain.ProbeSuccess, res.Status)
			assert.Equal(t, domain.ProbeMsgSuccess, res.Message)
			assert.Equal(t, code, res.StatusCode)
			assert.Equal(t, http.MethodGet, gotMethod)
			assert.NotEmpty(t, gotUA)
		})
	}
}

func TestProber_TransportFailure(t *testing.T) {
	p := prober.NewProberWithClient(newMockClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}), domain.ProbeTimeout)

	res := p.Probe(t.Context(), "https://unreachable.invalid")

	assert.Equal(t, domain.ProbeError, res.Status)
	assert.Equal(t, domain.ProbeMsgFailed, res.Message)
	assert.Zero(t, res.StatusCode)
}

func TestProber_Timeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := prober.NewProberWithClient(newMockClient(func(req *http.Request) (*http.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		}), domain.ProbeTimeout)

		start := time.Now()
		res := p.Probe(t.Context(), "https://slow.example.com")

		assert.Equal(t, domain.ProbeWarning, res.Status)
		assert.Equal(t, domain.ProbeMsgTimeout, res.Message)
		assert.Equal(t, domain.ProbeTimeout, time.Since(start))
	})
}

func TestProber_ParentCancellationIsFailure(t *testing.T) {
	p := prober.NewProberWithClient(newMockClient(func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	}), domain.ProbeTimeout)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	res := p.Probe(ctx, "https://example.com")

	assert.Equal(t, domain.ProbeError, res.Status)
}

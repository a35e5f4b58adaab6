// Package prober implements the admin connectivity probe over net/http.
package prober

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/core/ports"
)

var _ ports.URLProber = (*Prober)(nil)

// userAgent identifies probe requests in upstream access logs.
const userAgent = "logolink-probe/1"

// drainLimit bounds how much of a response body is read before closing.
const drainLimit = 64 << 10

// Prober checks that a URL answers within a deadline.
type Prober struct {
	client  *http.Client
	timeout time.Duration
}

// New creates a Prober with the default 10 second deadline.
func New() *Prober {
	return newProberWithClient(&http.Client{}, domain.ProbeTimeout)
}

// newProberWithClient creates a Prober with a custom client and deadline (used for testing).
func newProberWithClient(client *http.Client, timeout time.Duration) *Prober {
	return &Prober{client: client, timeout: timeout}
}

// Probe requests rawURL. Any HTTP response counts as reachable.
func (p *Prober) Probe(ctx context.Context, rawURL string) domain.ProbeResult {
	rawURL = strings.TrimSpace(rawURL)
	res := domain.ProbeResult{URL: rawURL}

	if rawURL == "" {
		res.Status, res.Message = domain.ProbeError, domain.ProbeMsgEmptyURL
		return res
	}
	if !domain.IsAbsoluteURL(rawURL) {
		res.Status, res.Message = domain.ProbeError, domain.ProbeMsgBadURL
		return res
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		res.Status, res.Message = domain.ProbeError, domain.ProbeMsgBadURL
		return res
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			res.Status, res.Message = domain.ProbeWarning, domain.ProbeMsgTimeout
			return res
		}
		res.Status, res.Message = domain.ProbeError, domain.ProbeMsgFailed
		return res
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))
		_ = resp.Body.Close()
	}()

	res.Status, res.Message = domain.ProbeSuccess, domain.ProbeMsgSuccess
	res.StatusCode = resp.StatusCode
	return res
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

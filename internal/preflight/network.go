package preflight

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"slices"

	averrors "github.com/avep-labs/avep/internal/errors"
)

// CheckNetwork issues a single GET to the configured endpoint. Accepted
// statuses pass, any other status is a warning, and a transport failure
// is reported as two errors: the connection failure and the failed check.
func (c *Checker) CheckNetwork(ctx context.Context) Report {
	nc := c.cfg.Network
	r := newReport("network", "Checking network connectivity...")
	c.logger.Debug("check started", "check", r.Name, "url", nc.URL)

	status, err := c.probeEndpoint(ctx, nc.URL)
	if err != nil {
		code := averrors.ErrCodeNetworkUnavailable
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			code = averrors.ErrCodeNetworkTimeout
		}
		verr := averrors.New(code, fmt.Sprintf("GET %s failed: %v", nc.URL, err), err).
			WithDetail("url", nc.URL).
			WithSuggestion("check your internet connection and proxy settings")
		c.logProbeError(r.Name, verr)

		r.fail(fmt.Sprintf("cannot reach %s: %v", nc.Name, err), detail(verr))
		r.fail("network check failed", "")
		return r
	}

	if slices.Contains(nc.AcceptStatus, status) {
		r.pass(fmt.Sprintf("%s reachable", nc.Name))
		return r
	}

	verr := averrors.New(averrors.ErrCodeUnexpectedStatus,
		fmt.Sprintf("GET %s returned %d", nc.URL, status), nil).
		WithDetail("status", fmt.Sprint(status))
	c.logProbeError(r.Name, verr)
	r.warn(fmt.Sprintf("%s returned status %d", nc.Name, status), detail(verr))
	return r
}

// probeEndpoint returns the response status of a GET to url. The body is discarded.
func (c *Checker) probeEndpoint(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

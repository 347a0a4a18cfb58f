package prober

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxBodyBytes = 64 << 10

// Prober runs a single health check. Transport failures are reported in the result, never as errors.
type Prober interface {
	Probe(ctx context.Context, cfg model.EndpointConfig) model.ProbeResult
}

type httpProber struct {
	client    *http.Client
	signer    Signer
	userAgent string
	now       func() time.Time
}

type response struct {
	status  int
	body    []byte
	latency time.Duration
}

func (p *httpProber) Probe(ctx context.Context, cfg model.EndpointConfig) model.ProbeResult {
	method := strings.ToUpper(cfg.Method)
	if method == "" {
		method = model.MethodGet
	}
	result := model.ProbeResult{
		ID:           uuid.NewString(),
		EndpointName: cfg.Name,
		Group:        cfg.Group,
		URL:          cfg.URL,
		Method:       method,
		CheckedAt:    p.now(),
	}

	var (
		res response
		err error
	)
	if cfg.IsLiveness() {
		res, err = p.do(ctx, http.MethodHead, cfg)
		if err == nil && res.status == http.StatusMethodNotAllowed {
			res, err = p.do(ctx, http.MethodGet, cfg)
		}
	} else {
		res, err = p.do(ctx, method, cfg)
	}

	result.LatencyMs = res.latency.Milliseconds()
	if result.LatencyMs < 0 {
		result.LatencyMs = 0
	}
	if err != nil {
		result.ErrorDetails = err.Error()
		if isTimeout(err) {
			result.StatusCode = model.CodeTimeout
			result.Outcome = model.OutcomeTimeout
			result.Message = fmt.Sprintf("Request timeout after %ds", int(cfg.Timeout().Seconds()))
		} else {
			result.StatusCode = model.CodeError
			result.Outcome = model.OutcomeError
			result.Message = "Connection error"
		}
		return result
	}
	result.HTTPStatus = res.status
	result.StatusCode = strconv.Itoa(res.status)
	result.Body = res.body
	return result
}

func (p *httpProber) do(ctx context.Context, method string, cfg model.EndpointConfig) (response, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, cfg.URL, nil)
	if err != nil {
		return response{}, fmt.Errorf("Prober.do build request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")
	for k, v := range cfg.CustomHeaders {
		req.Header.Set(k, v)
	}
	if cfg.Signed && p.signer != nil {
		p.signer.Sign(req.Header)
	}

	start := p.now()
	resp, err := p.client.Do(req)
	if err != nil {
		return response{latency: p.now().Sub(start)}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	latency := p.now().Sub(start)
	if err != nil {
		return response{latency: latency}, fmt.Errorf("Prober.do read body: %w", err)
	}
	return response{status: resp.StatusCode, body: body, latency: latency}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func NewProber(client *http.Client, signer Signer, userAgent string) Prober {
	if client == nil {
		client = &http.Client{}
	}
	if userAgent == "" {
		userAgent = "BPJS-Monitoring/1.0"
	}
	return &httpProber{
		client:    client,
		signer:    signer,
		userAgent: userAgent,
		now:       time.Now,
	}
}

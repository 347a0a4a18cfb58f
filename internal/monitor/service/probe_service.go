package service

import (
	"BPJS_Monitoring_Service/internal/monitor/classifier"
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/notification"
	"BPJS_Monitoring_Service/internal/monitor/prober"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const customProbeName = "Custom Test"

const (
	ErrorTypeConnectionTimeout = "connection_timeout"
	ErrorTypeGeneralException  = "general_exception"
)

type ProbeOptions struct {
	SignedHostSuffix  string
	BodyPreviewLength int
}

// ProbeService runs an ad-hoc check against an arbitrary url, outside the registry.
type ProbeService interface {
	CustomProbe(ctx context.Context, req model.CustomProbeRequest) (model.CustomProbeResult, error)
}

type probeService struct {
	prober prober.Prober
	policy notification.Policy
	opts   ProbeOptions
}

func (p *probeService) CustomProbe(ctx context.Context, req model.CustomProbeRequest) (model.CustomProbeResult, error) {
	cfg := model.EndpointConfig{
		Name:           customProbeName,
		URL:            strings.TrimSpace(req.URL),
		Method:         req.Method,
		TimeoutSeconds: req.TimeoutSeconds,
		Group:          model.GroupBaseline,
	}
	if err := cfg.Validate(); err != nil {
		return model.CustomProbeResult{}, fmt.Errorf("ProbeService.CustomProbe: %w: %w", apperrors.ErrInvalidEndpointConfig, err)
	}
	if p.isSignedHost(cfg.URL) {
		cfg.Signed = true
		cfg.Group = model.GroupBpjs
	}
	cfg = cfg.WithDefaults()

	res := p.prober.Probe(ctx, cfg)
	cls := classifier.Classify(res, cfg)

	out := model.CustomProbeResult{
		ResponseTime: res.LatencyMs,
		Code:         cls.Code,
		Message:      cls.Message,
		Severity:     cls.Severity,
		IsSigned:     cfg.Signed,
		HTTPStatus:   res.HTTPStatus,
	}
	switch {
	case res.StatusCode == model.CodeTimeout:
		out.Status = model.CustomStatusTimeout
		out.ErrorType = ErrorTypeConnectionTimeout
		out.Help = fmt.Sprintf("The endpoint did not answer within %d seconds. Check connectivity to the host or raise the timeout.", cfg.TimeoutSeconds)
	case res.StatusCode == model.CodeError:
		out.Status = model.CustomStatusError
		out.ErrorType = ErrorTypeGeneralException
		out.Message = joinDetail(res.Message, res.ErrorDetails)
		out.Help = "The request could not be completed. Check the url, DNS resolution and firewall rules."
	default:
		out.Status = customStatus(cls, res.HTTPStatus)
		out.Help = helpFor(out.Status)
		out.BodyPreview = preview(res.Body, p.opts.BodyPreviewLength)
	}

	p.policy.OnCustomProbe(ctx, cfg.URL, out)
	return out, nil
}

func (p *probeService) isSignedHost(rawURL string) bool {
	suffix := strings.ToLower(strings.TrimPrefix(p.opts.SignedHostSuffix, "."))
	if suffix == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == suffix || strings.HasSuffix(host, "."+suffix)
}

func customStatus(cls classifier.Classification, httpStatus int) string {
	switch {
	case cls.Outcome == model.OutcomeSuccess:
		return model.CustomStatusSuccess
	case cls.Code == "404":
		return model.CustomStatusNotFound
	case cls.Code == "401" || httpStatus == http.StatusUnauthorized || httpStatus == http.StatusForbidden:
		return model.CustomStatusAuthError
	case httpStatus >= 400 && httpStatus < 500:
		return model.CustomStatusClientError
	case httpStatus >= 500:
		return model.CustomStatusServerError
	default:
		return model.CustomStatusError
	}
}

func helpFor(status string) string {
	switch status {
	case model.CustomStatusNotFound:
		return "The resource was not found. Check the path and the parameters in the url."
	case model.CustomStatusAuthError:
		return "Authentication was rejected. Check the consumer id, secret key and user key."
	case model.CustomStatusClientError:
		return "The request was rejected by the server. Check the method and parameters."
	case model.CustomStatusServerError:
		return "The server failed to handle the request, the problem is on the provider side."
	case model.CustomStatusError:
		return "The endpoint answered with an unexpected status code."
	default:
		return ""
	}
}

// preview cuts the body at n bytes and drops a rune split by the cut.
func preview(body []byte, n int) string {
	if n <= 0 || len(body) <= n {
		return string(body)
	}
	return strings.ToValidUTF8(string(body[:n]), "") + "..."
}

func joinDetail(message, detail string) string {
	if detail == "" {
		return message
	}
	return message + ": " + detail
}

func NewProbeService(prober prober.Prober, policy notification.Policy, opts ProbeOptions) ProbeService {
	return &probeService{
		prober: prober,
		policy: policy,
		opts:   opts,
	}
}

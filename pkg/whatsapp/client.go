package whatsapp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.fonnte.com"

var ErrMissingToken = errors.New("fonnte token is empty")

// Result is the body returned by the gateway. Status is false when the gateway rejected the message.
type Result struct {
	Status bool   `json:"status"`
	Reason string `json:"reason,omitempty"`
	Detail string `json:"detail,omitempty"`
	Raw    string `json:"-"`
}

type Client interface {
	Send(ctx context.Context, target string, message string) (Result, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func (c *client) Send(ctx context.Context, target string, message string) (Result, error) {
	if c.token == "" {
		return Result{}, fmt.Errorf("WhatsappClient.Send: %w", ErrMissingToken)
	}
	form := url.Values{}
	form.Set("target", target)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send", strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, fmt.Errorf("WhatsappClient.Send creating request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("WhatsappClient.Send: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return Result{}, fmt.Errorf("WhatsappClient.Send reading body: %w", err)
	}
	res := Result{Raw: string(body)}
	if err = json.Unmarshal(body, &res); err != nil {
		return res, fmt.Errorf("WhatsappClient.Send decoding body (http %d): %w", resp.StatusCode, err)
	}
	return res, nil
}

func NewClient(baseURL string, token string, timeout time.Duration) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrWebhookRejected = errors.New("slack webhook returned non-2xx")

type Notifier interface {
	Post(ctx context.Context, title string, text string) error
}

type webhook struct {
	url    string
	client *http.Client
}

type payload struct {
	Text string `json:"text"`
}

func (s *webhook) Post(ctx context.Context, title string, text string) error {
	body, err := json.Marshal(payload{Text: "*" + title + "*\n" + text})
	if err != nil {
		return fmt.Errorf("SlackWebhook.Post: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("SlackWebhook.Post creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("SlackWebhook.Post: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("SlackWebhook.Post: %w (status %d)", ErrWebhookRejected, resp.StatusCode)
	}
	return nil
}

func NewWebhook(url string, timeout time.Duration) Notifier {
	return &webhook{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

package notification

import (
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/pkg/mail"
	"BPJS_Monitoring_Service/pkg/slack"
	"BPJS_Monitoring_Service/pkg/whatsapp"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type DeliveryResult struct {
	Status bool
	Raw    string
}

// Deliverer hands a message to an outbound channel.
type Deliverer interface {
	Send(ctx context.Context, message string, recipient string) (DeliveryResult, error)
}

type whatsappDeliverer struct {
	client whatsapp.Client
}

func (w *whatsappDeliverer) Send(ctx context.Context, message string, recipient string) (DeliveryResult, error) {
	res, err := w.client.Send(ctx, recipient, message)
	if err != nil {
		return DeliveryResult{Raw: res.Raw}, fmt.Errorf("whatsappDeliverer.Send: %w", err)
	}
	return DeliveryResult{Status: res.Status, Raw: res.Raw}, nil
}

func NewWhatsappDeliverer(client whatsapp.Client) Deliverer {
	return &whatsappDeliverer{client: client}
}

type slackDeliverer struct {
	notifier slack.Notifier
}

func (s *slackDeliverer) Send(ctx context.Context, message string, _ string) (DeliveryResult, error) {
	title, body, _ := strings.Cut(message, "\n")
	if err := s.notifier.Post(ctx, title, body); err != nil {
		return DeliveryResult{}, fmt.Errorf("slackDeliverer.Send: %w", err)
	}
	return DeliveryResult{Status: true, Raw: "ok"}, nil
}

func NewSlackDeliverer(notifier slack.Notifier) Deliverer {
	return &slackDeliverer{notifier: notifier}
}

type mailDeliverer struct {
	sender     mail.Sender
	recipients []string
}

func (m *mailDeliverer) Send(_ context.Context, message string, recipient string) (DeliveryResult, error) {
	to := m.recipients
	if strings.Contains(recipient, "@") {
		to = []string{recipient}
	}
	subject, _, _ := strings.Cut(message, "\n")
	err := m.sender.Send(mail.Message{
		To:       to,
		Subject:  subject,
		TextBody: message,
	})
	if err != nil {
		return DeliveryResult{}, fmt.Errorf("mailDeliverer.Send: %w", err)
	}
	return DeliveryResult{Status: true, Raw: "sent"}, nil
}

func NewMailDeliverer(sender mail.Sender, recipients []string) Deliverer {
	return &mailDeliverer{sender: sender, recipients: recipients}
}

type fanOutDeliverer struct {
	deliverers []Deliverer
	logger     *zap.Logger
}

// Send reports success when at least one channel accepted the message. Failed channels are then
// logged, since the error is not returned.
func (f *fanOutDeliverer) Send(ctx context.Context, message string, recipient string) (DeliveryResult, error) {
	if len(f.deliverers) == 0 {
		return DeliveryResult{}, fmt.Errorf("fanOutDeliverer.Send: %w", apperrors.ErrDeliveryDisabled)
	}
	var (
		errs error
		raws []string
		ok   bool
	)
	for _, d := range f.deliverers {
		res, err := d.Send(ctx, message, recipient)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if res.Status {
			ok = true
		}
		raws = append(raws, res.Raw)
	}
	result := DeliveryResult{Status: ok, Raw: strings.Join(raws, "\n")}
	if ok {
		if errs != nil {
			f.logger.Warn("notification partially delivered", zap.Error(fmt.Errorf("fanOutDeliverer.Send: %w", errs)))
		}
		return result, nil
	}
	if errs == nil {
		errs = errors.New("rejected by every channel")
	}
	return result, fmt.Errorf("fanOutDeliverer.Send: %w", errs)
}

func NewFanOutDeliverer(logger *zap.Logger, deliverers ...Deliverer) Deliverer {
	return &fanOutDeliverer{deliverers: deliverers, logger: logger}
}

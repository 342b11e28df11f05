// Package notification delivers templated outbound messages to customers.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"glovia/config"
	"glovia/internal/domain/entity"
	"glovia/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultGatewayTimeout = 10 * time.Second

// messageTemplates holds the outbound message bodies in Bahasa Indonesia.
// Placeholders use {{name}} syntax and are filled from the params map.
var messageTemplates = map[string]string{
	"order_shipped": "Halo {{customer_name}}, pesanan Anda telah dikirim. " +
		"Nomor resi: {{tracking_number}}. Terima kasih telah berbelanja.",
	"invoice_issued": "Halo {{customer_name}}, invoice {{invoice_number}} sebesar {{total_amount}} " +
		"telah diterbitkan. Mohon selesaikan pembayaran sebelum {{due_date}}.",
	"quotation_submitted": "Penawaran baru {{quotation_id}} dengan subtotal {{subtotal}} " +
		"telah dikirim pelanggan dan menunggu peninjauan.",
}

type sender struct {
	cfg        *config.NotificationConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSender creates the notification sender backed by the configured
// WhatsApp gateway and SMTP relay.
func NewSender(cfg *config.Config, logger *slog.Logger) service.NotificationSender {
	timeout := defaultGatewayTimeout
	if cfg.Notification != nil && cfg.Notification.WhatsApp != nil && cfg.Notification.WhatsApp.Timeout > 0 {
		timeout = cfg.Notification.WhatsApp.Timeout
	}

	return &sender{
		cfg:        cfg.Notification,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send renders the named template with params and delivers it over the channel.
func (s *sender) Send(ctx context.Context, channel entity.CommunicationChannel, recipient, template string, params map[string]string) error {
	body, err := renderTemplate(template, params)
	if err != nil {
		return err
	}

	switch channel {
	case entity.ChannelWhatsApp:
		return s.sendWhatsApp(ctx, recipient, body)
	case entity.ChannelEmail:
		return s.sendEmail(recipient, template, body)
	default:
		return errors.Errorf("unsupported notification channel: %s", channel)
	}
}

// whatsAppRequest is the gateway's message payload.
type whatsAppRequest struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}

func (s *sender) sendWhatsApp(ctx context.Context, recipient, body string) error {
	if s.cfg == nil || s.cfg.WhatsApp == nil || s.cfg.WhatsApp.GatewayURL == "" {
		return errors.New("whatsapp gateway is not configured")
	}

	payload, err := json.Marshal(whatsAppRequest{
		Sender:    s.cfg.WhatsApp.Sender,
		Recipient: recipient,
		Message:   body,
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal whatsapp payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WhatsApp.GatewayURL, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build whatsapp request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.WhatsApp.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to call whatsapp gateway")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}

	s.logger.Debug("whatsapp message delivered", slog.String("recipient", recipient))

	return nil
}

func (s *sender) sendEmail(recipient, subject, body string) error {
	if s.cfg == nil || s.cfg.Email == nil || s.cfg.Email.Host == "" {
		return errors.New("smtp relay is not configured")
	}

	emailCfg := s.cfg.Email
	addr := fmt.Sprintf("%s:%d", emailCfg.Host, emailCfg.Port)
	auth := smtp.PlainAuth("", emailCfg.Username, emailCfg.Password, emailCfg.Host)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		emailCfg.From, recipient, subject, body)

	if err := smtp.SendMail(addr, auth, emailCfg.From, []string{recipient}, []byte(msg)); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	s.logger.Debug("email delivered", slog.String("recipient", recipient))

	return nil
}

func renderTemplate(name string, params map[string]string) (string, error) {
	body, ok := messageTemplates[name]
	if !ok {
		return "", errors.Errorf("unknown notification template: %s", name)
	}

	pairs := make([]string, 0, len(params)*2)
	for key, value := range params {
		pairs = append(pairs, "{{"+key+"}}", value)
	}

	return strings.NewReplacer(pairs...).Replace(body), nil
}

package contact

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultWebhookTimeout = 8 * time.Second

// WebhookConfig describes the CRM endpoint leads are posted to.
// When TokenURL is set, requests carry a client-credentials bearer token.
type WebhookConfig struct {
	URL          string
	Timeout      time.Duration
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// WebhookSubmitter posts the form as JSON to a CRM endpoint.
// Transport errors, timeouts and non-2xx answers are all failures.
type WebhookSubmitter struct {
	url    string
	client *resty.Client
}

type webhookPayload struct {
	Fields
	SubmittedAt time.Time `json:"submitted_at"`
}

type webhookResponse struct {
	ID string `json:"id"`
}

func NewWebhookSubmitter(cfg WebhookConfig) (*WebhookSubmitter, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("webhook url is empty")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultWebhookTimeout
	}

	hc := &http.Client{}
	if cfg.TokenURL != "" {
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		hc = cc.Client(context.Background())
	}

	client := resty.NewWithClient(hc).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &WebhookSubmitter{url: cfg.URL, client: client}, nil
}

func (s *WebhookSubmitter) Submit(ctx context.Context, f Fields) (Ack, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "WebhookSubmitter.Submit", trace.WithAttributes(
		attribute.String("http.url", s.url),
	))
	defer span.End()

	now := time.Now().UTC()
	var out webhookResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(webhookPayload{Fields: f, SubmittedAt: now}).
		SetResult(&out).
		Post(s.url)
	if err != nil {
		span.RecordError(err)
		return Ack{}, &SubmitError{Err: err}
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	if !resp.IsSuccess() {
		err := &SubmitError{
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("unexpected response %q", resp.Status()),
		}
		span.RecordError(err)
		return Ack{}, err
	}

	// Le CRM peut répondre sans corps : on garde quand même une référence.
	ref := out.ID
	if ref == "" {
		ref = resp.Header().Get("X-Request-Id")
	}
	return Ack{Reference: ref, At: now}, nil
}

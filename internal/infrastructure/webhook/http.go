package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// HTTPService implements webhook delivery via HTTP POST.
type HTTPService struct {
	httpClient *http.Client
	url        string
	log        zerolog.Logger
	maxRetries int
	retryDelay time.Duration
}

// NewHTTPService creates a new HTTP-based webhook service. With an empty URL
// deliveries are skipped and reported as successful.
func NewHTTPService(url string, log zerolog.Logger) *HTTPService {
	return &HTTPService{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		url:        url,
		log:        log.With().Str("component", "webhook").Logger(),
		maxRetries: 3,
		retryDelay: 2 * time.Second,
	}
}

// Deliver posts the notification payload with retries.
func (s *HTTPService) Deliver(ctx context.Context, delivery Delivery) error {
	if s.url == "" {
		s.log.Debug().Str("notification_id", delivery.NotificationID).Msg("no webhook URL configured, skipping delivery")
		return nil
	}

	body, err := json.Marshal(delivery)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create webhook request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "marketplace-api/1.0")
		req.Header.Set("X-Marketplace-Event", delivery.Event)
		req.Header.Set("X-Marketplace-Notification-ID", delivery.NotificationID)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("send webhook (attempt %d/%d): %w", attempt, s.maxRetries, err)
			s.log.Warn().Err(err).Str("url", s.url).Int("attempt", attempt).Msg("webhook delivery failed")

			if attempt < s.maxRetries {
				time.Sleep(s.retryDelay)
				continue
			}
			break
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			s.log.Info().
				Str("url", s.url).
				Int("status", resp.StatusCode).
				Str("notification_id", delivery.NotificationID).
				Msg("webhook delivered successfully")
			return nil
		}

		lastErr = fmt.Errorf("webhook returned status %d (attempt %d/%d)", resp.StatusCode, attempt, s.maxRetries)
		s.log.Warn().Int("status", resp.StatusCode).Str("url", s.url).Int("attempt", attempt).Msg("webhook delivery failed")

		if attempt < s.maxRetries {
			time.Sleep(s.retryDelay)
		}
	}

	return lastErr
}

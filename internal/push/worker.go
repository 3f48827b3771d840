package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rescue365/rescue_dispatch_system/internal/config"
	"github.com/rescue365/rescue_dispatch_system/internal/errs"
	"github.com/sirupsen/logrus"
)

// TokenSource resolves a user's push delivery token
type TokenSource interface {
	GetDeviceToken(ctx context.Context, userID string) (string, error)
}

// Worker drains the push queue and delivers messages to the push gateway.
// Delivery is best-effort: failures are logged, never surfaced to callers.
type Worker struct {
	redisClient *redis.Client
	tokens      TokenSource
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

func NewWorker(redisClient *redis.Client, tokens TokenSource, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		tokens:      tokens,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.PushTimeout,
		},
	}
}

// gatewayMessage is the Expo-style push payload the gateway accepts
type gatewayMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Start launches the queue-draining goroutine
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting push worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping push worker.")
				return
			default:
				// BRPOP blocks until an event arrives; 0 means wait forever
				result, err := w.redisClient.BRPop(ctx, 0, pushQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop push event from Redis")
					time.Sleep(w.cfg.PushTimeout)
					continue
				}

				// result[0] is the key, result[1] the payload
				var event Event
				if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal push event from Redis")
					continue
				}

				w.deliver(ctx, event)
			}
		}
	}()
}

func (w *Worker) deliver(ctx context.Context, event Event) {
	log := w.logger.WithField("event_user_id", event.UserID).WithField("event_report_id", event.ReportID)
	log.Debug("Processing push event...")

	token, err := w.tokens.GetDeviceToken(ctx, event.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			log.Info("No device token registered for user. Skipping push delivery.")
			return
		}
		log.WithError(err).Error("Failed to resolve device token")
		return
	}

	payload, err := json.Marshal(gatewayMessage{
		To:    token,
		Title: event.Title,
		Body:  event.Body,
	})
	if err != nil {
		log.WithError(err).Error("Failed to marshal push gateway message")
		return
	}

	maxRetries := w.cfg.PushMaxRetries
	baseDelay := w.cfg.PushBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.PushGatewayURL, bytes.NewReader(payload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create push request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send push. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Push delivered successfully.")
			return
		}

		log.Warnf("Push delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2
	}

	log.Errorf("Failed to deliver push after %d retries.", maxRetries)
}

package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/gobank/internal/config"
	"github.com/GlebRadaev/gobank/internal/domain"
	"github.com/GlebRadaev/gobank/pkg/clients"
	"github.com/GlebRadaev/gobank/pkg/metrics"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	drainTimeout  = time.Second * 5
	sendPath      = "/api/send"
)

var ErrRelayRejected = errors.New("mail relay rejected the message")

// Notification is one e-mail about a money movement or account change.
type Notification struct {
	Event  Event
	User   domain.User
	Amount decimal.Decimal
}

type Message struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type Service struct {
	relayURL      string
	from          string
	client        clients.HTTPClientI
	workerPool    WorkerPoolI
	metrics       *metrics.Collector
	retryInterval time.Duration
	drainTimeout  time.Duration
	runCtx        context.Context
	stopped       chan struct{}
}

func New(cfg *config.Config, client clients.HTTPClientI, collector *metrics.Collector) *Service {
	return &Service{
		relayURL:      cfg.MailRelayAddress,
		from:          cfg.MailFrom,
		client:        client,
		workerPool:    NewWorkerPool(cfg.MailWorkers),
		metrics:       collector,
		retryInterval: retryInterval,
		drainTimeout:  drainTimeout,
		runCtx:        context.Background(),
		stopped:       make(chan struct{}),
	}
}

// Start binds deliveries to ctx. Once ctx is done the pool takes no new messages
// and the queued ones get drainTimeout to reach the relay.
func (s *Service) Start(ctx context.Context) {
	drainCtx, cancelDrain := context.WithCancel(context.WithoutCancel(ctx))
	s.runCtx = drainCtx
	zap.L().Info("Notification service started", zap.Bool("relay", s.relayURL != ""))
	go func() {
		defer close(s.stopped)
		defer cancelDrain()
		<-ctx.Done()

		timer := time.AfterFunc(s.drainTimeout, cancelDrain)
		defer timer.Stop()
		s.workerPool.Close()
		zap.L().Info("Notification service stopped")
	}()
}

// Stopped is closed when the queue has been drained after shutdown.
func (s *Service) Stopped() <-chan struct{} {
	return s.stopped
}

// Send queues the notifications for delivery. Failures are logged and never returned.
func (s *Service) Send(ctx context.Context, notifications ...Notification) {
	var g errgroup.Group
	for _, n := range notifications {
		n := n
		g.Go(func() error {
			msg, err := s.message(n)
			if err != nil {
				return err
			}
			return s.workerPool.AddTask(ctx, func() error {
				return s.deliver(s.runCtx, msg)
			})
		})
	}

	if err := g.Wait(); err != nil {
		s.metrics.RecordNotification(metrics.NotificationFailed)
		zap.L().Error("can't queue notification", zap.Error(err))
	}
}

func (s *Service) message(n Notification) (Message, error) {
	subject, html, err := render(n.Event, n.User.FullName(), n.Amount)
	if err != nil {
		return Message{}, err
	}
	return Message{
		ID:      uuid.NewString(),
		From:    s.from,
		To:      n.User.Email,
		Subject: subject,
		HTML:    html,
	}, nil
}

func (s *Service) deliver(ctx context.Context, msg Message) error {
	if s.relayURL == "" {
		s.metrics.RecordNotification(metrics.NotificationSkipped)
		zap.L().Info("Mail relay is not configured, message logged only",
			zap.String("id", msg.ID), zap.String("to", msg.To), zap.String("subject", msg.Subject))
		return nil
	}

	err := s.post(ctx, msg)
	if err != nil {
		s.metrics.RecordNotification(metrics.NotificationFailed)
		return err
	}
	s.metrics.RecordNotification(metrics.NotificationSent)
	zap.L().Info("Notification sent", zap.String("id", msg.ID), zap.String("subject", msg.Subject))
	return nil
}

func (s *Service) post(ctx context.Context, msg Message) error {
	url := s.relayURL + sendPath
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, _, respHeaders, err := s.client.PostJSON(ctx, url, msg, nil)
		switch {
		case err != nil:
			lastErr = err
		case statusCode == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("%w: rate limited", ErrRelayRejected)
			if attempt < maxRetries {
				if err := s.wait(ctx, s.retryAfter(respHeaders, attempt)); err != nil {
					return err
				}
			}
			continue
		case statusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("%w: status %d", ErrRelayRejected, statusCode)
		case statusCode >= http.StatusBadRequest:
			zap.L().Error("Mail relay refused message", zap.Int("status", statusCode), zap.String("id", msg.ID))
			return fmt.Errorf("%w: status %d", ErrRelayRejected, statusCode)
		default:
			return nil
		}

		if attempt < maxRetries {
			zap.L().Warn("Mail relay unavailable, retrying", zap.String("id", msg.ID), zap.Int("attempt", attempt), zap.Error(lastErr))
			if err := s.wait(ctx, s.retryInterval*time.Duration(attempt)); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("failed to send message %s after %d retries: %w", msg.ID, maxRetries, lastErr)
}

func (s *Service) retryAfter(respHeaders http.Header, attempt int) time.Duration {
	retryAfter := s.retryInterval * time.Duration(attempt)
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn("Rate limit detected, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", retryAfter))
	return retryAfter
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

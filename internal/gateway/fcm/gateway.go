package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "fcm"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

type message struct {
	RegistrationIDs []string     `json:"registration_ids"`
	Data            dto.PushData `json:"data"`
}

type sendResult struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// Gateway отправляет data-сообщения через legacy HTTP API FCM.
type Gateway struct {
	client   httpClient
	retrier  retrier
	endpoint string
	apiKey   string
}

func New(client httpClient, endpoint, apiKey string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:   client,
		retrier:  backoff_adapter.New(retryConfig),
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

func (g *Gateway) Send(ctx context.Context, push entities.OrderPush) error {
	if len(push.DeviceIDs) == 0 {
		return nil
	}

	body, err := json.Marshal(message{
		RegistrationIDs: push.DeviceIDs,
		Data:            dto.FromPush(push).Data,
	})
	if err != nil {
		return fmt.Errorf("gateway fcm, encode message: %w", err)
	}

	var result sendResult
	err = g.executeWithMetrics(ctx, "send", func(ctx context.Context) error {
		var err error
		result, err = g.post(ctx, body)
		return err
	})
	if err != nil {
		PushDevicesTotal.WithLabelValues("error").Add(float64(len(push.DeviceIDs)))
		return fmt.Errorf("gateway fcm, send order %d: %w", push.Order.ID, err)
	}

	PushDevicesTotal.WithLabelValues("success").Add(float64(result.Success))
	PushDevicesTotal.WithLabelValues("failure").Add(float64(result.Failure))

	if result.Success == 0 && result.Failure > 0 {
		return fmt.Errorf("gateway fcm, order %d: %w", push.Order.ID, ErrRejected)
	}
	return nil
}

func (g *Gateway) post(ctx context.Context, body []byte) (sendResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return sendResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return sendResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return sendResult{}, &statusError{code: resp.StatusCode}
	}

	var result sendResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return sendResult{}, fmt.Errorf("decode fcm response: %w", err)
	}
	return result, nil
}

// isRetryable ретраим сетевые ошибки, 5xx и 429. Отмена контекста не ретраится.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.code == http.StatusTooManyRequests || statusErr.code >= http.StatusInternalServerError
	}

	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := responseCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func responseCode(err error) string {
	if err == nil {
		return "OK"
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "UNKNOWN"
}

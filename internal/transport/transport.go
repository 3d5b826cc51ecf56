// Package transport performs the single HTTP POST of the tariff protocol.
// It selects between the two endpoint variants, sets the fixed SOAP
// headers and classifies failures into typed transport errors. No retries:
// retry policy belongs to the caller.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"emprunteo/tarificateur/internal/clienterror"
	"emprunteo/tarificateur/internal/request"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Fixed request properties of the remote operation.
const (
	ContentType = "text/xml;charset=utf-8"
	SOAPAction  = request.SoapNamespace + "#" + request.SoapOperation

	// excerptLimit bounds the response excerpt carried by transport
	// errors so large or sensitive payloads never reach the logs.
	excerptLimit = 512

	defaultTimeout = 30 * time.Second
)

// Config holds the two endpoint URLs. SimulationURL prices without leaving
// a record on the remote system; PersistentURL makes the simulation appear
// on the remote service's own tracking views.
type Config struct {
	SimulationURL string
	PersistentURL string
	Timeout       time.Duration
}

// Transport issues tariff calls over a shared http.Client. Safe for
// concurrent use.
type Transport struct {
	cfg    Config
	client *http.Client
}

// New creates a transport with its own http.Client honoring cfg.Timeout.
func New(cfg Config) *Transport {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Transport{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// NewWithClient creates a transport reusing an existing http.Client.
func NewWithClient(cfg Config, client *http.Client) *Transport {
	if client == nil {
		return New(cfg)
	}
	return &Transport{cfg: cfg, client: client}
}

// Call posts the envelope to the endpoint selected by persist and returns
// the raw response body. Context cancellation and deadlines surface as a
// TransportError with Timeout set, so callers can tell a local timeout
// from a remote failure.
func (t *Transport) Call(ctx context.Context, envelope string, persist bool) ([]byte, error) {
	url := t.cfg.SimulationURL
	if persist {
		url = t.cfg.PersistentURL
	}
	if url == "" {
		return nil, &clienterror.TransportError{Err: fmt.Errorf("no endpoint configured (persist=%v)", persist)}
	}

	callID := uuid.NewString()
	callLog := log.WithFields(logrus.Fields{
		"call_id": callID,
		"persist": persist,
		"bytes":   len(envelope),
	})
	callLog.Info("Calling tariff service")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader([]byte(envelope)))
	if err != nil {
		return nil, &clienterror.TransportError{Err: err}
	}
	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("SOAPAction", SOAPAction)

	resp, err := t.client.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			callLog.WithError(err).Warn("Tariff call timed out")
			return nil, &clienterror.TransportError{Timeout: true, Err: err}
		}
		callLog.WithError(err).Error("Tariff call failed")
		return nil, &clienterror.TransportError{Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			callLog.WithError(cerr).Warn("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &clienterror.TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		callLog.WithField("status", resp.StatusCode).Error("Tariff service returned non-success status")
		return nil, &clienterror.TransportError{
			StatusCode:  resp.StatusCode,
			BodyExcerpt: excerpt(body),
		}
	}

	callLog.WithField("status", resp.StatusCode).Debug("Tariff call succeeded")
	return body, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

func excerpt(body []byte) string {
	if len(body) > excerptLimit {
		return string(body[:excerptLimit]) + "..."
	}
	return string(body)
}

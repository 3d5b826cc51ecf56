// Package tarifclient is the public entry point of the tariff protocol
// client. It runs the full pipeline for one call: build the wire request,
// post it, parse the envelope and normalize the result into quotes.
package tarifclient

import (
	"context"
	"net/http"
	"time"

	"emprunteo/tarificateur/internal/models"
	"emprunteo/tarificateur/internal/request"
	"emprunteo/tarificateur/internal/response"
	"emprunteo/tarificateur/internal/tariff"
	"emprunteo/tarificateur/internal/transport"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package and the pipeline stages
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		request.SetLogger(logger)
		transport.SetLogger(logger)
		response.SetLogger(logger)
		tariff.SetLogger(logger)
	}
}

// Domain types re-exported so callers do not import internal packages.
type (
	TariffRequest      = models.TariffRequest
	InsuredPerson      = models.InsuredPerson
	Loan               = models.Loan
	GuaranteeSelection = models.GuaranteeSelection
	CommissionOptions  = models.CommissionOptions
	TariffQuote        = models.TariffQuote
	GuaranteeCost      = models.GuaranteeCost
)

// Config carries the connection values supplied by the caller. The client
// never reads them from the process environment.
type Config struct {
	SimulationURL string // pricing endpoint, leaves no record remotely
	PersistentURL string // endpoint that persists the simulation remotely
	Licence       string
	BrokerCode    string
	Timeout       time.Duration
}

// Options selects per-call behavior.
type Options struct {
	// Persist routes the call to the endpoint that records the
	// simulation on the remote service's tracking views.
	Persist bool
}

// Client is a synchronous tariff pipeline. It holds no mutable state
// between calls and is safe for concurrent use.
type Client struct {
	builder   *request.Builder
	transport *transport.Transport
}

// New creates a client with its own HTTP client honoring cfg.Timeout.
func New(cfg Config) *Client {
	return &Client{
		builder:   request.NewBuilder(cfg.Licence, cfg.BrokerCode),
		transport: transport.New(transportConfig(cfg)),
	}
}

// NewWithHTTPClient creates a client reusing an existing http.Client,
// typically to share pooling or an instrumented round tripper.
func NewWithHTTPClient(cfg Config, httpClient *http.Client) *Client {
	return &Client{
		builder:   request.NewBuilder(cfg.Licence, cfg.BrokerCode),
		transport: transport.NewWithClient(transportConfig(cfg), httpClient),
	}
}

func transportConfig(cfg Config) transport.Config {
	return transport.Config{
		SimulationURL: cfg.SimulationURL,
		PersistentURL: cfg.PersistentURL,
		Timeout:       cfg.Timeout,
	}
}

// Quote prices a tariff request and returns one quote per product offered.
// Timeouts are imposed through ctx; every failure comes back as one of the
// typed errors in internal/clienterror, never retried here.
func (c *Client) Quote(ctx context.Context, req *TariffRequest, opts Options) ([]TariffQuote, error) {
	built, err := c.builder.Build(req)
	if err != nil {
		return nil, err
	}

	raw, err := c.transport.Call(ctx, built.Envelope, opts.Persist)
	if err != nil {
		return nil, err
	}

	sim, err := response.Parse(raw)
	if err != nil {
		return nil, err
	}

	quotes, err := tariff.Normalize(sim)
	if err != nil {
		return nil, err
	}

	log.WithField("products", len(quotes)).Info("Tariff call completed")
	return quotes, nil
}

// BuildOnly returns the wire documents without calling the remote service,
// for callers that audit or archive outgoing requests.
func (c *Client) BuildOnly(req *TariffRequest) (*request.BuiltRequest, error) {
	return c.builder.Build(req)
}

package credential

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sells-group/xbrl-cli/pkg/firecrawl"
)

// DefaultProbeURL is a page that is always reachable, scraped to prove a key works.
const DefaultProbeURL = "https://example.com"

// Status is the outcome of a credential check.
type Status int

const (
	// StatusIndeterminate means the check could not reach a verdict, e.g. on
	// a network error or a server-side failure.
	StatusIndeterminate Status = iota
	// StatusValid means the probe scrape succeeded.
	StatusValid
	// StatusInvalid means the service rejected the key.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "indeterminate"
	}
}

// ClientFactory builds a Firecrawl client bound to an API key.
type ClientFactory func(apiKey string) firecrawl.Client

// Validator checks credentials with a probe scrape.
type Validator struct {
	newClient ClientFactory
	probeURL  string
}

// NewValidator creates a Validator. An empty probeURL uses DefaultProbeURL.
func NewValidator(newClient ClientFactory, probeURL string) *Validator {
	if probeURL == "" {
		probeURL = DefaultProbeURL
	}
	return &Validator{newClient: newClient, probeURL: probeURL}
}

// Validate reports whether the credential is accepted by the remote service.
// Any failure, including network errors, yields false.
func (v *Validator) Validate(ctx context.Context, credential string) bool {
	return v.Check(ctx, credential) == StatusValid
}

// Check runs the probe scrape and classifies the outcome. It never panics:
// a panicking client is reported as StatusIndeterminate.
func (v *Validator) Check(ctx context.Context, credential string) (status Status) {
	log := zap.L().With(zap.String("probe_url", v.probeURL))
	log.Debug("credential: testing api key")

	defer func() {
		if r := recover(); r != nil {
			log.Error("credential: probe panicked", zap.String("panic", fmt.Sprint(r)))
			status = StatusIndeterminate
		}
	}()

	resp, err := v.newClient(credential).Scrape(ctx, firecrawl.ScrapeRequest{URL: v.probeURL})
	if err != nil {
		var apiErr *firecrawl.APIError
		if errors.As(err, &apiErr) && apiErr.Unauthorized() {
			log.Info("credential: api key rejected", zap.Int("status_code", apiErr.StatusCode))
			return StatusInvalid
		}
		log.Warn("credential: error testing api key", zap.Error(err))
		return StatusIndeterminate
	}
	if resp == nil || !resp.Success {
		log.Info("credential: probe scrape not successful")
		return StatusInvalid
	}
	return StatusValid
}

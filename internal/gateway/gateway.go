// Package gateway fetches rendered iXBRL documents through Firecrawl using the
// stored credential.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/xbrl-cli/internal/credential"
	"github.com/sells-group/xbrl-cli/pkg/firecrawl"
)

// DefaultUserAgent is sent to target sites to reduce bot blocking.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Failure messages returned when the provider gives no detail.
const (
	MsgCredentialNotFound = "API key not found. Please add your Firecrawl API key to continue."
	MsgScrapeFailed       = "Failed to scrape iXBRL document"
	MsgConnectFailed      = "Failed to connect to Firecrawl API"
)

// Gateway fetches documents with the credential held in its store.
type Gateway struct {
	store     credential.Store
	newClient credential.ClientFactory
	userAgent string
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithUserAgent overrides the User-Agent sent to the target site.
func WithUserAgent(ua string) Option {
	return func(g *Gateway) {
		if ua != "" {
			g.userAgent = ua
		}
	}
}

// New creates a Gateway.
func New(store credential.Store, newClient credential.ClientFactory, opts ...Option) *Gateway {
	g := &Gateway{
		store:     store,
		newClient: newClient,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Fetch scrapes targetURL as HTML and raw HTML. All failures are returned as a
// Failure result; Fetch never returns an error.
func (g *Gateway) Fetch(ctx context.Context, targetURL string) Result {
	log := zap.L().With(
		zap.String("request_id", uuid.NewString()),
		zap.String("url", targetURL),
	)
	log.Debug("gateway: fetch started", zap.String("state", string(StateIdle)))

	apiKey, ok, err := g.store.Load(ctx)
	if err != nil {
		log.Warn("gateway: load credential", zap.Error(err))
	}
	if err != nil || !ok || apiKey == "" {
		return g.finish(log, Failure(MsgCredentialNotFound))
	}

	log.Info("gateway: scraping iXBRL document", zap.String("state", string(StateRequesting)))
	return g.finish(log, g.scrape(ctx, apiKey, targetURL))
}

func (g *Gateway) scrape(ctx context.Context, apiKey, targetURL string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure(fallback(fmt.Sprint(r), MsgConnectFailed))
		}
	}()

	resp, err := g.newClient(apiKey).Scrape(ctx, firecrawl.ScrapeRequest{
		URL:     targetURL,
		Formats: []string{firecrawl.FormatHTML, firecrawl.FormatRawHTML},
		Headers: map[string]string{"User-Agent": g.userAgent},
	})
	if err != nil {
		var apiErr *firecrawl.APIError
		if errors.As(err, &apiErr) {
			if msg := apiErr.Message(); msg != "" {
				return Failure(msg)
			}
		}
		return Failure(fallback(err.Error(), MsgConnectFailed))
	}
	if resp == nil || !resp.Success {
		var msg string
		if resp != nil {
			msg = resp.Error
		}
		return Failure(fallback(msg, MsgScrapeFailed))
	}
	return Success(resp.Data)
}

func (g *Gateway) finish(log *zap.Logger, res Result) Result {
	if res.OK() {
		log.Info("gateway: iXBRL document scraped", zap.String("state", string(res.State())))
	} else {
		log.Warn("gateway: scrape failed",
			zap.String("state", string(res.State())),
			zap.String("error", res.Message()),
		)
	}
	return res
}

func fallback(msg, def string) string {
	if strings.TrimSpace(msg) == "" {
		return def
	}
	return msg
}

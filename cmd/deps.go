package main

import (
	"context"

	"github.com/sells-group/xbrl-cli/internal/credential"
	"github.com/sells-group/xbrl-cli/internal/sample"
	"github.com/sells-group/xbrl-cli/pkg/firecrawl"
)

func initStore(ctx context.Context) (credential.Store, error) {
	if err := cfg.Validate("store"); err != nil {
		return nil, err
	}
	return credential.NewSQLite(ctx, cfg.Store.Path)
}

func firecrawlFactory() credential.ClientFactory {
	baseURL := cfg.Firecrawl.BaseURL
	return func(apiKey string) firecrawl.Client {
		return firecrawl.NewClient(apiKey, firecrawl.WithBaseURL(baseURL))
	}
}

func loadCatalog() (*sample.Catalog, error) {
	if cfg.Samples.File == "" {
		return sample.Builtin(), nil
	}
	return sample.LoadCatalog(cfg.Samples.File)
}

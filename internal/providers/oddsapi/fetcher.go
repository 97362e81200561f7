package oddsapi

import (
	"context"
	"log/slog"

	"github.com/jcamargo/pronosbot/internal/pkg/cache"
	"github.com/jcamargo/pronosbot/internal/pkg/models"
)

// Fetcher wraps the client with the fail-soft contract the pipeline
// relies on: any failure (missing credential, transport, bad status,
// malformed body) yields an empty slice and a warning log, never an
// error. Downstream code treats "no odds" as a normal state.
type Fetcher struct {
	client *Client
	cache  cache.OddsCache
}

// NewFetcher builds a fetcher. cache may be nil (no caching).
func NewFetcher(client *Client, oddsCache cache.OddsCache) *Fetcher {
	return &Fetcher{client: client, cache: oddsCache}
}

// FetchOdds returns the current odds listing for the category, or an
// empty slice when anything goes wrong.
func (f *Fetcher) FetchOdds(ctx context.Context, category models.Category) []models.OddsEvent {
	sportKey := category.OddsKey()
	if sportKey == "" {
		slog.Warn("Odds fetch skipped: unknown category", "category", category)
		return nil
	}
	if !f.client.HasCredential() {
		slog.Warn("Odds fetch skipped: no API key configured", "sport_key", sportKey)
		return nil
	}

	if f.cache != nil {
		if data, ok := f.cache.Get(ctx, sportKey); ok {
			events, err := DecodeOdds(data)
			if err == nil {
				slog.Debug("Odds served from cache", "sport_key", sportKey, "events", len(events))
				return events
			}
			// Stale or corrupt payload: fall through to the network.
			slog.Warn("Odds cache payload unreadable, refetching", "sport_key", sportKey, "error", err)
		}
	}

	data, err := f.client.OddsRaw(ctx, sportKey)
	if err != nil {
		slog.Warn("Odds fetch failed", "sport_key", sportKey, "error", err)
		return nil
	}
	events, err := DecodeOdds(data)
	if err != nil {
		slog.Warn("Odds response malformed", "sport_key", sportKey, "error", err)
		return nil
	}

	if f.cache != nil {
		f.cache.Set(ctx, sportKey, data)
	}

	slog.Info("Odds fetched", "sport_key", sportKey, "events", len(events))
	return events
}

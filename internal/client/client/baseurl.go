package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/hotelpanel/internal/client/storage"
)

// DefaultBaseURL is used when neither config nor storage name one.
const DefaultBaseURL = "http://127.0.0.1:5000/api/v1"

// ResolveBaseURL returns the stored "api_url" override if set, else fallback.
func ResolveBaseURL(ctx context.Context, kv storage.KV, fallback string) (string, error) {
	v, err := kv.Get(ctx, storage.KeyAPIURL)
	if err != nil {
		return "", fmt.Errorf("read api url override: %w", err)
	}
	if s := strings.TrimSpace(string(v)); s != "" {
		return s, nil
	}
	if fallback == "" {
		return DefaultBaseURL, nil
	}
	return fallback, nil
}

// SetBaseURLOverride stores raw as the base URL for future runs.
func SetBaseURLOverride(ctx context.Context, kv storage.KV, raw string) error {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api url %q: want http(s)://host[:port][/path]", raw)
	}
	return kv.Set(ctx, storage.KeyAPIURL, []byte(raw))
}

func ClearBaseURLOverride(ctx context.Context, kv storage.KV) error {
	return kv.Delete(ctx, storage.KeyAPIURL)
}

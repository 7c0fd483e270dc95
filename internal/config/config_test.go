package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Catalog: CatalogConfig{
			ItemsPath:      "data/catalog.json",
			EmbeddingsPath: "data/embeddings.parquet",
		},
		Embedding: EmbeddingConfig{
			APIKey: "test-key",
			Model:  "text-embedding-3-small",
		},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad port", func(c *Config) { c.HTTP.Port = 0 }, "http.port"},
		{"no items path", func(c *Config) { c.Catalog.ItemsPath = "" }, "catalog.items_path"},
		{"no embeddings path", func(c *Config) { c.Catalog.EmbeddingsPath = "" }, "catalog.embeddings_path"},
		{"no model", func(c *Config) { c.Embedding.Model = "" }, "embedding.model"},
		{"threshold above one", func(c *Config) { c.Search.CuratedThreshold = 1.5 }, "curated_threshold"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("ReadTimeoutSec = %d, want 10", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Search.CuratedCap != 6 {
		t.Errorf("CuratedCap = %d, want 6", cfg.Search.CuratedCap)
	}
	if cfg.Search.CuratedThreshold != 0.5 {
		t.Errorf("CuratedThreshold = %g, want 0.5", cfg.Search.CuratedThreshold)
	}
	if cfg.Chat.APIKey != "test-key" {
		t.Errorf("Chat.APIKey = %q, want fallback to embedding key", cfg.Chat.APIKey)
	}
	if cfg.Embedding.TimeoutSec != 10 {
		t.Errorf("Embedding.TimeoutSec = %d, want 10", cfg.Embedding.TimeoutSec)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("ROOMSEARCH_TEST_KEY", "secret")

	out := string(expandEnvVars([]byte("api_key: ${ROOMSEARCH_TEST_KEY}")))
	if out != "api_key: secret" {
		t.Errorf("expanded = %q", out)
	}

	out = string(expandEnvVars([]byte("port: ${ROOMSEARCH_TEST_UNSET:-8080}")))
	if out != "port: 8080" {
		t.Errorf("expanded with default = %q", out)
	}
}

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ELASTICSEARCH_INDEX", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CLASSIFIER_TIMEOUT_SECONDS", "")

	cfg := Load()
	if cfg.ElasticsearchIndex != "caseflow_docs" {
		t.Fatalf("expected default index caseflow_docs, got %q", cfg.ElasticsearchIndex)
	}
	if cfg.OpenAIAPIKey != "" {
		t.Fatalf("expected empty api key by default, got %q", cfg.OpenAIAPIKey)
	}
	if cfg.JWTSecret != InsecureDefaultJWTSecret {
		t.Fatalf("expected insecure default secret, got %q", cfg.JWTSecret)
	}
	if cfg.ClassifierTimeoutSeconds != 30 {
		t.Fatalf("expected default classifier timeout 30, got %d", cfg.ClassifierTimeoutSeconds)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("ELASTICSEARCH_INDEX", "legal_docs")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("API_RATE_LIMIT_RPS", "10")

	cfg := Load()
	if cfg.ElasticsearchIndex != "legal_docs" {
		t.Fatalf("expected index override, got %q", cfg.ElasticsearchIndex)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("expected api key override, got %q", cfg.OpenAIAPIKey)
	}
	if cfg.JWTTTLHours != 2 {
		t.Fatalf("expected ttl 2, got %d", cfg.JWTTTLHours)
	}
	if cfg.APIRateLimitRPS != 10 {
		t.Fatalf("expected rate limit 10, got %d", cfg.APIRateLimitRPS)
	}
}

func TestLoadFallsBackOnBadInt(t *testing.T) {
	t.Setenv("MIRROR_TIMEOUT_SECONDS", "not-a-number")

	cfg := Load()
	if cfg.MirrorTimeoutSeconds != 10 {
		t.Fatalf("expected fallback mirror timeout 10, got %d", cfg.MirrorTimeoutSeconds)
	}
}

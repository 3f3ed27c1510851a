package nhle

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultBaseURL},
		{"  ", defaultBaseURL},
		{"https://api.example.com/", "https://api.example.com"},
		{"https://api.example.com", "https://api.example.com"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 0)
	httpClient, ok := client.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", client)
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected timeout %s, got %s", defaultHTTPTimeout, httpClient.Timeout)
	}
	if c := resolveHTTPClient(nil, 5*time.Second).(*http.Client); c.Timeout != 5*time.Second {
		t.Fatalf("expected configured timeout, got %s", c.Timeout)
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client := resolveHTTPClient(custom, time.Minute)
	if client != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cases := map[string]time.Duration{
		"":    0,
		"3":   3 * time.Second,
		"-1":  0,
		"bad": 0,
		now.Add(10 * time.Second).Format(http.TimeFormat): 10 * time.Second,
		now.Add(-time.Minute).Format(http.TimeFormat):     0,
	}
	for raw, want := range cases {
		if got := parseRetryAfter(raw, now); got != want {
			t.Fatalf("parseRetryAfter(%q): expected %s, got %s", raw, want, got)
		}
	}
}

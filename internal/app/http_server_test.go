package app

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestNetHTTPServerServesOnListener(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "collector_sweeps_total 1\n")
	})
	s := netHTTPServer{srv: &http.Server{Handler: mux, ReadHeaderTimeout: readHeaderTimeout}, listener: l}

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	resp, err := http.Get("http://" + l.Addr().String() + "/metrics")
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "collector_sweeps_total 1\n" {
		t.Fatalf("unexpected body %q", body)
	}

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	select {
	case err := <-done:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Fatalf("expected ErrServerClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("serve did not return after shutdown")
	}
}

func TestNetHTTPServerListenAndServeWithoutListener(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	s := netHTTPServer{srv: srv}
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	time.Sleep(50 * time.Millisecond)
	_ = srv.Shutdown(context.Background())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("listen did not return after shutdown")
	}
}

func TestNetHTTPServerAccessors(t *testing.T) {
	handler := http.NewServeMux()
	s := netHTTPServer{srv: &http.Server{Addr: ":9090", Handler: handler}}

	if s.Addr() != ":9090" {
		t.Fatalf("expected addr passthrough")
	}
	if s.Handler() != handler {
		t.Fatalf("expected handler passthrough")
	}
}

package debtservice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDiskCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"v":"3.35"}`))
	}))
	defer srv.Close()

	client := &http.Client{Transport: &diskCache{base: http.DefaultTransport, dir: t.TempDir()}}
	for i := 0; i < 3; i++ {
		var data struct{ V string }
		if err := GetJSON(context.Background(), client, srv.URL+"/ok", nil, &data); err != nil {
			t.Fatalf("GetJSON() unexpected error = %v", err)
		}
		if data.V != "3.35" {
			t.Errorf("GetJSON() = %q, want 3.35", data.V)
		}
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}

	// failures are not cached
	for i := 0; i < 2; i++ {
		if _, err := Get(context.Background(), client, srv.URL+"/missing", nil); !errors.Is(err, ErrNetwork) {
			t.Errorf("Get() error = %v, want %v", err, ErrNetwork)
		}
	}
	if hits != 3 {
		t.Errorf("server hit %d times, want 3", hits)
	}
}

func TestGetJSONInvalid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	var data any
	if err := GetJSON(context.Background(), srv.Client(), srv.URL, nil, &data); !errors.Is(err, ErrParse) {
		t.Errorf("GetJSON() error = %v, want %v", err, ErrParse)
	}
}

func TestGetHeader(t *testing.T) {
	var agent, accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent, accept = r.Header.Get("User-Agent"), r.Header.Get("Accept")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	var data any
	err := GetJSON(context.Background(), NewClient(0, false), srv.URL, http.Header{"User-Agent": {BrowserAgent}}, &data)
	if err != nil {
		t.Fatalf("GetJSON() unexpected error = %v", err)
	}
	if agent != BrowserAgent || accept != "application/json" {
		t.Errorf("GetJSON() sent User-Agent=%q Accept=%q", agent, accept)
	}
}

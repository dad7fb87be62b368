package valet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/debtservice"
)

func TestSource(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    debtservice.Percent
		wantErr error
	}{
		{
			name: "last observation",
			body: `{"observations":[{"d":"2025-01-02","V122544":{"v":"3.35"}},{"d":"2025-01-03","V122544":{"v":"3.37"}}]}`,
			want: 3.37,
		},
		{
			name: "numeric value",
			body: `{"observations":[{"d":"2025-01-03","V122544":{"v":3.4}}]}`,
			want: 3.4,
		},
		{
			name:    "no observation",
			body:    `{"observations":[]}`,
			wantErr: debtservice.ErrEmpty,
		},
		{
			name:    "missing observations",
			body:    `{"seriesDetail":{}}`,
			wantErr: debtservice.ErrEmpty,
		},
		{
			name:    "malformed json",
			body:    `{"observations":[`,
			wantErr: debtservice.ErrParse,
		},
		{
			name:    "other series",
			body:    `{"observations":[{"d":"2025-01-03","V39051":{"v":"3.4"}}]}`,
			wantErr: debtservice.ErrParse,
		},
		{
			name:    "non numeric",
			body:    `{"observations":[{"d":"2025-01-03","V122544":{"v":"n/a"}}]}`,
			wantErr: debtservice.ErrParse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var query string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				query = r.URL.Path + "?" + r.URL.RawQuery
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := Source(srv.Client(), srv.URL, LongTermBond).Fetch(context.Background())
			if want := "/observations/V122544/json?recent=10"; query != want {
				t.Errorf("Fetch() requested %q, want %q", query, want)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Fetch() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch() unexpected error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Fetch() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSourceNetwork(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close() // nothing listens anymore

	_, err := Source(nil, addr, LongTermBond).Fetch(context.Background())
	if !errors.Is(err, debtservice.ErrNetwork) {
		t.Errorf("Fetch() error = %v, want %v", err, debtservice.ErrNetwork)
	}
}

package yahoo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/debtservice"
)

func TestCorrect(t *testing.T) {
	tests := []struct {
		raw, want float64
	}{
		{raw: 48.7, want: 4.87},
		{raw: 4.87, want: 4.87},
		{raw: 12, want: 12},
		{raw: 12.5, want: 1.25},
		{raw: 0, want: 0},
	}
	for _, tt := range tests {
		if got := Correct(tt.raw); !debtservice.Percent(got).Equal(debtservice.Percent(tt.want)) {
			t.Errorf("Correct(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestSource(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    debtservice.Percent
		wantErr error
	}{
		{
			name: "tenths of percent",
			body: `{"chart":{"result":[{"indicators":{"quote":[{"close":[48.1,48.7]}]}}],"error":null}}`,
			want: 4.87,
		},
		{
			name: "percent, open session",
			body: `{"chart":{"result":[{"indicators":{"quote":[{"close":[4.57,4.61,null]}]}}],"error":null}}`,
			want: 4.61,
		},
		{
			name:    "only nulls",
			body:    `{"chart":{"result":[{"indicators":{"quote":[{"close":[null]}]}}],"error":null}}`,
			wantErr: debtservice.ErrEmpty,
		},
		{
			name:    "unknown symbol",
			body:    `{"chart":{"result":null,"error":{"code":"Not Found"}}}`,
			wantErr: debtservice.ErrParse,
		},
		{
			name:    "not json",
			body:    `<html>Too Many Requests</html>`,
			wantErr: debtservice.ErrParse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := Source(srv.Client(), srv.URL, Symbol).Fetch(context.Background())
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

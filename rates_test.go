package debtservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
)

// fixed returns a source answering v.
func fixed(name string, v Percent) Source {
	return Source{Name: name, Fetch: func(context.Context) (Percent, error) { return v, nil }}
}

// failing returns a source failing with err.
func failing(name string, err error) Source {
	return Source{Name: name, Fetch: func(context.Context) (Percent, error) { return 0, err }}
}

func TestResolver(t *testing.T) {
	netErr := fmt.Errorf("%w: connection refused", ErrNetwork)
	parseErr := fmt.Errorf("%w: no marker", ErrParse)

	tests := []struct {
		name    string
		sources []Source
		want    Quote
	}{
		{
			name:    "first wins",
			sources: []Source{fixed("a", 3.1), fixed("b", 3.2)},
			want:    Quote{Yield: 3.1, Source: "a"},
		},
		{
			name:    "skip failures",
			sources: []Source{failing("a", netErr), failing("b", parseErr), fixed("c", 3.3)},
			want:    Quote{Yield: 3.3, Source: "c"},
		},
		{
			name:    "manual override",
			sources: []Source{Manual(4.2), fixed("b", 3.2)},
			want:    Quote{Yield: 4.2, Source: "manual"},
		},
		{
			name:    "manual disabled",
			sources: []Source{Manual(0), fixed("b", 3.2)},
			want:    Quote{Yield: 3.2, Source: "b"},
		},
		{
			name:    "no value",
			sources: []Source{fixed("nan", Percent(math.NaN())), fixed("b", 3.2)},
			want:    Quote{Yield: 3.2, Source: "b"},
		},
		{
			name:    "all fail",
			sources: []Source{failing("a", netErr), failing("b", parseErr), Manual(-1)},
			want:    Quote{Yield: 3.86, Source: FallbackSource, Fallback: true},
		},
		{
			name: "no source",
			want: Quote{Yield: 3.86, Source: FallbackSource, Fallback: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolver{Sources: tt.sources, Fallback: 3.86}
			got, err := r.Resolve(context.Background())
			if err != nil {
				t.Fatalf("Resolve() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolverTriesInOrderOnce(t *testing.T) {
	var calls []string
	src := func(name string, err error) Source {
		return Source{Name: name, Fetch: func(context.Context) (Percent, error) {
			calls = append(calls, name)
			return 3, err
		}}
	}
	r := Resolver{Sources: []Source{src("a", ErrParse), src("b", nil), src("c", nil)}}
	if _, err := r.Resolve(context.Background()); err != nil {
		t.Fatalf("Resolve() unexpected error = %v", err)
	}
	if got := fmt.Sprint(calls); got != "[a b]" {
		t.Errorf("Resolve() called %v, want [a b]", got)
	}
}

func TestResolverStrict(t *testing.T) {
	netErr := fmt.Errorf("%w: timeout", ErrNetwork)
	r := Resolver{
		Sources:  []Source{failing("a", netErr), failing("b", ErrEmpty)},
		Fallback: 3.86,
		Strict:   true,
	}
	_, err := r.Resolve(context.Background())
	if !errors.Is(err, ErrNoRate) {
		t.Fatalf("Resolve() error = %v, want %v", err, ErrNoRate)
	}
	// source errors are kept for diagnostic.
	if !errors.Is(err, ErrNetwork) || !errors.Is(err, ErrEmpty) {
		t.Errorf("Resolve() error = %v, want it to wrap every source error", err)
	}

	r.Sources = nil
	if _, err := r.Resolve(context.Background()); !errors.Is(err, ErrNoRate) {
		t.Errorf("Resolve() without source error = %v, want %v", err, ErrNoRate)
	}

	r.Sources = []Source{failing("a", netErr), fixed("b", 3.5)}
	got, err := r.Resolve(context.Background())
	if err != nil || got.Yield != 3.5 {
		t.Errorf("Resolve() = %v, %v, want 3.5", got, err)
	}
}

package debtservice

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
)

// FallbackSource is the Quote.Source of a fallback quote.
const FallbackSource = "fallback"

// Source is a provider of the bond yield.
type Source struct {
	Name  string
	Fetch func(ctx context.Context) (Percent, error)
}

// Quote is a bond yield and where it comes from.
type Quote struct {
	Yield    Percent
	Source   string
	Fallback bool // true if no source answered
}

// Manual returns a Source that always answers rate, or nothing if rate is not strictly positive.
func Manual(rate Percent) Source {
	return Source{
		Name: "manual",
		Fetch: func(context.Context) (Percent, error) {
			if rate > 0 {
				return rate, nil
			}
			return 0, ErrNoValue
		},
	}
}

// Resolver tries each of its sources in order and keeps the first answer.
type Resolver struct {
	Sources  []Source
	Fallback Percent // returned when no source answers
	Strict   bool    // when true, no fallback: Resolve fails with ErrNoRate
}

// Resolve returns the first rate obtained without error.
//
// Source errors are logged and never returned, except in strict mode where
// all of them are joined to ErrNoRate.
func (r Resolver) Resolve(ctx context.Context) (Quote, error) {
	var errs error
	for _, src := range r.Sources {
		v, err := src.Fetch(ctx)
		if err == nil && (math.IsNaN(float64(v)) || math.IsInf(float64(v), 0)) {
			err = fmt.Errorf("%w: %v", ErrNoValue, v)
		}
		if err != nil {
			if !errors.Is(err, ErrNoValue) {
				log.Printf("⚠️ %s failed: %v", src.Name, err)
			}
			errs = errors.Join(errs, fmt.Errorf("%s: %w", src.Name, err))
			continue
		}
		log.Printf("✅ %s rate is %v", src.Name, v)
		return Quote{Yield: v, Source: src.Name}, nil
	}

	if r.Strict {
		if errs == nil {
			return Quote{}, ErrNoRate
		}
		return Quote{}, fmt.Errorf("%w: %w", ErrNoRate, errs)
	}
	log.Printf("❌ all sources failed, using fallback: %v", r.Fallback)
	return Quote{Yield: r.Fallback, Source: FallbackSource, Fallback: true}, nil
}

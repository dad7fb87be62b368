// Package yahoo reads a market proxy of the bond yield from the Yahoo Finance chart API.
package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/debtservice"
)

const (
	// BaseURL is the chart API root.
	BaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	// Symbol is the instrument used as a proxy of the long-term yield.
	Symbol = "^TNX"

	// Threshold above which a quote is deemed ten times too large.
	Threshold = 12

	closePath = "$.chart.result[0].indicators.quote[0].close"
	Timeout   = 20 * time.Second
)

// Correct brings a quote back to percent when it looks ten times too large.
//
// Some yield indices are quoted in tenths of percent (48.7 for 4.87%). No
// long-term yield has been above the threshold for decades, so a larger
// value is assumed to be in that scale. This is a guess on the magnitude, not
// a documented unit.
func Correct(raw float64) float64 {
	if raw > Threshold {
		return raw / 10
	}
	return raw
}

// Source returns a rate source reading the latest close of symbol.
//
// A response looks like:
//
//	{"chart": {"result": [{
//	  "meta": {"symbol": "^TNX", "regularMarketPrice": 4.87},
//	  "timestamp": [1735776000, 1735862400],
//	  "indicators": {"quote": [{"close": [4.57, null]}]}
//	}], "error": null}}
func Source(client *http.Client, base, symbol string) debtservice.Source {
	if client == nil {
		client = debtservice.NewClient(Timeout, false)
	}
	addr := fmt.Sprintf("%s/%s?range=5d&interval=1d", strings.TrimSuffix(base, "/"), url.PathEscape(symbol))
	return debtservice.Source{
		Name: "Yahoo " + symbol,
		Fetch: func(ctx context.Context) (debtservice.Percent, error) {
			var jobj any
			err := debtservice.GetJSON(ctx, client, addr, http.Header{"User-Agent": {debtservice.BrowserAgent}}, &jobj)
			if err != nil {
				return 0, err
			}
			raw, err := lastClose(jobj)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", symbol, err)
			}
			return debtservice.Percent(Correct(raw)), nil
		},
	}
}

// lastClose returns the most recent non null close in a chart payload.
func lastClose(jobj any) (float64, error) {
	jval, err := jsonpath.Get(closePath, jobj)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", debtservice.ErrParse, closePath, err)
	}
	closes, ok := jval.([]any)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a list: %v", debtservice.ErrParse, closePath, jval)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// unwrap the list of one list.
	if len(closes) == 1 {
		if inner, ok := closes[0].([]any); ok {
			closes = inner
		}
	}
	// the current session is usually null
	for i := len(closes) - 1; i >= 0; i-- {
		if val, ok := closes[i].(float64); ok {
			return val, nil
		}
	}
	return 0, fmt.Errorf("%w: no close in %s", debtservice.ErrEmpty, closePath)
}

// Package valet reads bond yields from the Bank of Canada Valet API.
//
// See https://www.bankofcanada.ca/valet/docs
package valet

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/debtservice"
)

const (
	// BaseURL is the Valet API root.
	BaseURL = "https://www.bankofcanada.ca/valet"
	// LongTermBond is the series of the Government of Canada benchmark bond yield, long-term.
	LongTermBond = "V122544"
	// Recent is the number of observations requested, only the last one is used.
	Recent = 10

	Timeout = 15 * time.Second
)

// observations is the payload of the observations endpoint, like:
//
//	{
//	  "observations": [
//	    {"d": "2025-01-02", "V122544": {"v": "3.35"}},
//	    {"d": "2025-01-03", "V122544": {"v": "3.37"}}
//	  ]
//	}
//
// Values are keyed by series name, so each observation is decoded as a map.
type observations struct {
	Observations []map[string]any `json:"observations"`
}

// Source returns a rate source reading the last observation of series.
func Source(client *http.Client, base, series string) debtservice.Source {
	if client == nil {
		client = debtservice.NewClient(Timeout, false)
	}
	addr := fmt.Sprintf("%s/observations/%s/json?recent=%d", strings.TrimSuffix(base, "/"), url.PathEscape(series), Recent)
	return debtservice.Source{
		Name: "Bank of Canada",
		Fetch: func(ctx context.Context) (debtservice.Percent, error) {
			var payload observations
			if err := debtservice.GetJSON(ctx, client, addr, nil, &payload); err != nil {
				return 0, err
			}
			return lastValue(payload, series)
		},
	}
}

// lastValue returns the value of series in the last observation.
func lastValue(payload observations, series string) (debtservice.Percent, error) {
	if len(payload.Observations) == 0 {
		return 0, fmt.Errorf("%w: no observation for %s", debtservice.ErrEmpty, series)
	}
	last := payload.Observations[len(payload.Observations)-1]
	cell, ok := last[series].(map[string]any)
	if !ok {
		return 0, fmt.Errorf("%w: last observation %v has no %s", debtservice.ErrParse, last["d"], series)
	}
	// Valet sends numbers as strings, but be lenient.
	switch v := cell["v"].(type) {
	case string:
		val, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s on %v is not a number: %q", debtservice.ErrParse, series, last["d"], v)
		}
		return debtservice.Percent(val), nil
	case float64:
		return debtservice.Percent(v), nil
	}
	return 0, fmt.Errorf("%w: %s on %v has no value", debtservice.ErrParse, series, last["d"])
}

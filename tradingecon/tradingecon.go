// Package tradingecon scrapes a bond yield from a tradingeconomics.com market page.
package tradingecon

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/debtservice"
	"golang.org/x/net/html"
)

const (
	// Canada30Y is the page of the Canadian 30 years government bond.
	Canada30Y = "https://tradingeconomics.com/gcan30y:ind"
	// Canada30YLabel is how that bond is labelled in the page's tables.
	Canada30YLabel = "Canada 30Y"

	// marker is the id of the element holding the last quoted value.
	marker = "market_last"

	// Timeout of a page download.
	Timeout = 10 * time.Second
)

// Source returns a rate source that scrapes addr.
//
// The value is read from the element with id "market_last". If the page has
// none, the first table row containing label is used instead.
func Source(client *http.Client, addr, label string) debtservice.Source {
	if client == nil {
		client = debtservice.NewClient(Timeout, false)
	}
	return debtservice.Source{
		Name: "TradingEconomics",
		Fetch: func(ctx context.Context) (debtservice.Percent, error) {
			body, err := debtservice.Get(ctx, client, addr, http.Header{"User-Agent": {debtservice.BrowserAgent}})
			if err != nil {
				return 0, err
			}
			return Parse(body, label)
		},
	}
}

// Parse extracts the yield from a market page.
func Parse(page []byte, label string) (debtservice.Percent, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid html: %w", debtservice.ErrParse, err)
	}

	var text string
	if n := findByID(doc, marker); n != nil {
		text = textOf(n)
	} else if row := findRow(doc, label); row != nil {
		text, err = valueInRow(row, label)
		if err != nil {
			return 0, err
		}
	} else {
		return 0, fmt.Errorf("%w: neither #%s nor a %q row in page", debtservice.ErrParse, marker, label)
	}

	text = strings.TrimSuffix(strings.TrimSpace(text), "%")
	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", debtservice.ErrParse, text)
	}
	return debtservice.Percent(val), nil
}

// findByID returns the first element whose id is id.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && getAttr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// findRow returns the first <tr> whose text contains label.
func findRow(n *html.Node, label string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "tr" && strings.Contains(textOf(n), label) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findRow(c, label); found != nil {
			return found
		}
	}
	return nil
}

// valueInRow returns the text of the first numeric cell following the cell holding label.
func valueInRow(row *html.Node, label string) (string, error) {
	seen := false
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		text := strings.TrimSpace(textOf(c))
		if !seen {
			seen = strings.Contains(text, label)
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSuffix(text, "%"), 64); err == nil {
			return text, nil
		}
	}
	return "", fmt.Errorf("%w: no numeric cell after %q", debtservice.ErrParse, label)
}

// textOf returns the concatenated text content of n.
func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

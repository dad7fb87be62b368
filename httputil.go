package debtservice

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/debtservice/date"
)

// contains http utils to deal with remote rate sources

// BrowserAgent is a User-Agent that web pages do not turn away.
const BrowserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
	dir  string
}

// RoundTrip implements http.RoundTripper. Successful responses are stored on
// disk, and served from there for the rest of the day.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// diskcache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("debtservice-%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	// DumpResponse reads the body and replaces it with an in-memory copy.
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0644)
}

// NewClient returns an http.Client with the given timeout.
//
// If cached is true, successful responses are kept on disk and served again
// until the end of the day.
func NewClient(timeout time.Duration, cached bool) *http.Client {
	client := &http.Client{Timeout: timeout}
	if cached {
		client.Transport = &diskCache{base: http.DefaultTransport, dir: os.TempDir()}
	}
	return client
}

// Get performs an HTTP GET and returns the body.
//
// Transport failures and non-200 statuses are reported as ErrNetwork.
func Get(ctx context.Context, client *http.Client, addr string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create http request %q: %w", addr, err)
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: cannot http GET %v%v: %v", ErrNetwork, req.URL.Host, req.URL.Path, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("%w: cannot read http body: %w", ErrNetwork, err)
	}
	return buf.Bytes(), nil
}

// GetJSON performs an HTTP GET request and unmarshals the JSON response into data.
//
// Decoding failures are reported as ErrParse.
func GetJSON(ctx context.Context, client *http.Client, addr string, header http.Header, data any) error {
	h := http.Header{"Accept": {"application/json"}}
	for k, v := range header {
		h[k] = v
	}
	body, err := Get(ctx, client, addr, h)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, data); err != nil {
		return fmt.Errorf("%w: invalid json: %w", ErrParse, err)
	}
	return nil
}

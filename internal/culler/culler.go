// Package culler finds bookmarks whose URLs no longer resolve.
package culler

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/nikbrunner/marks/internal/model"
)

// Status represents the health status of a URL.
type Status int

const (
	Healthy     Status = iota // 2xx or 3xx response
	Dead                      // 404 or 410 Gone
	Unreachable               // timeout, DNS failure, connection refused, etc.
)

func (s Status) String() string {
	switch s {
	case Healthy:
		return "healthy"
	case Dead:
		return "dead"
	default:
		return "unreachable"
	}
}

// Result holds the check result for a single bookmark.
type Result struct {
	Bookmark   model.Bookmark
	Index      int    // position in the checked slice
	Status     Status
	StatusCode int    // HTTP status code (0 if connection failed)
	Error      string // Error message for unreachable URLs
}

// ProgressFunc is called after each URL is checked.
type ProgressFunc func(completed, total int)

// Options tunes CheckURLs.
type Options struct {
	Concurrency int           // workers, at least 1
	Timeout     time.Duration // per request
	// ExcludeDomains lists hosts where a 404 means "possibly private"
	// rather than dead.
	ExcludeDomains []string
	Client         *http.Client // optional, built from Timeout if nil
	OnProgress     ProgressFunc // optional
}

// CheckURLs checks all bookmark URLs concurrently. Results keep the order
// of bookmarks. Cancelling ctx marks the remaining URLs unreachable.
func CheckURLs(ctx context.Context, bookmarks []model.Bookmark, opts Options) []Result {
	if len(bookmarks) == 0 {
		return nil
	}

	// Suppress noisy HTTP client logging (protocol errors, unsolicited responses, etc.)
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	excludeMap := make(map[string]bool)
	for _, domain := range opts.ExcludeDomains {
		excludeMap[strings.ToLower(domain)] = true
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{
			Timeout: opts.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Follow redirects but limit to 10
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		}
	}

	results := make([]Result, len(bookmarks))
	jobs := make(chan int, len(bookmarks))
	var wg sync.WaitGroup

	var progressMu sync.Mutex
	completed := 0

	for w := 0; w < max(opts.Concurrency, 1); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = checkURL(ctx, client, bookmarks[idx], excludeMap)
				results[idx].Index = idx

				if opts.OnProgress != nil {
					progressMu.Lock()
					completed++
					opts.OnProgress(completed, len(bookmarks))
					progressMu.Unlock()
				}
			}
		}()
	}

	for i := range bookmarks {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// DeadResults returns the results with status Dead.
func DeadResults(results []Result) []Result {
	var dead []Result
	for _, r := range results {
		if r.Status == Dead {
			dead = append(dead, r)
		}
	}
	return dead
}

// RemoveDead returns bookmarks without the entries reported dead.
func RemoveDead(bookmarks []model.Bookmark, results []Result) []model.Bookmark {
	dead := make(map[int]bool)
	for _, r := range DeadResults(results) {
		dead[r.Index] = true
	}

	kept := make([]model.Bookmark, 0, len(bookmarks)-len(dead))
	for i, b := range bookmarks {
		if !dead[i] {
			kept = append(kept, b)
		}
	}
	return kept
}

func checkURL(ctx context.Context, client *http.Client, bookmark model.Bookmark, excludeMap map[string]bool) Result {
	result := Result{Bookmark: bookmark}

	// Try HEAD first (faster, less bandwidth)
	resp, err := do(ctx, client, http.MethodHead, bookmark.URL)
	if err == nil && headUnsupported(resp.StatusCode) {
		resp.Body.Close()
		err = errHeadUnsupported
	}
	if err != nil {
		// Some servers don't support HEAD
		resp, err = do(ctx, client, http.MethodGet, bookmark.URL)
		if err != nil {
			result.Status = Unreachable
			result.Error = normalizeError(err.Error())
			return result
		}
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 400:
		result.Status = Healthy
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		if isExcludedDomain(bookmark.URL, excludeMap) {
			result.Status = Unreachable
			result.Error = "Possibly private (auth required)"
		} else {
			result.Status = Dead
		}
	default:
		// 5xx, 403 and friends may be temporary or behind auth
		result.Status = Unreachable
		result.Error = http.StatusText(resp.StatusCode)
	}

	return result
}

var errHeadUnsupported = errors.New("HEAD not supported")

func headUnsupported(code int) bool {
	return code == http.StatusMethodNotAllowed || code == http.StatusNotImplemented
}

func do(ctx context.Context, client *http.Client, method, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return client.Do(req)
}

// isExcludedDomain checks if the URL's host is, or is below, an excluded domain.
func isExcludedDomain(rawURL string, excludeMap map[string]bool) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	if excludeMap[host] {
		return true
	}
	for domain := range excludeMap {
		if strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// normalizeError simplifies verbose error messages into readable categories.
func normalizeError(errStr string) string {
	lower := strings.ToLower(errStr)

	switch {
	case strings.Contains(lower, "no such host"):
		return "DNS failure"
	case strings.Contains(lower, "context deadline exceeded"),
		strings.Contains(lower, "timeout"):
		return "Timeout"
	case strings.Contains(lower, "context canceled"):
		return "Cancelled"
	case strings.Contains(lower, "connection refused"):
		return "Connection refused"
	case strings.Contains(lower, "certificate"):
		return "TLS/certificate error"
	case strings.Contains(lower, "network is unreachable"):
		return "Network unreachable"
	case strings.Contains(lower, "tls:"):
		return "TLS error"
	default:
		return errStr
	}
}

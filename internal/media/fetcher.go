package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/sbeeredd04/trecgen/internal/layout"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultMaxBytes = 10 << 20 // 10 MiB, matching the source tool's cap
	defaultWorkers  = 4

	userAgent = "trecgen/1.0"
)

// Fetcher downloads and processes item photos with bounded concurrency.
type Fetcher struct {
	Client   *http.Client
	MaxBytes int64
	Workers  int
	Logger   *slog.Logger
}

// NewFetcher returns a Fetcher with the default timeout, size cap and worker
// count.
func NewFetcher(logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		Client:   &http.Client{Timeout: defaultTimeout},
		MaxBytes: defaultMaxBytes,
		Workers:  defaultWorkers,
		Logger:   logger,
	}
}

// FetchAll downloads every photo the plan references and returns processed
// images keyed by plan index. Downloads run on at most Workers goroutines;
// each result lands in its own slot, so the map read back by the renderer is
// in plan order regardless of completion order. A failed fetch or decode
// leaves its slot nil — the corresponding photo page is skipped with a
// warning, never aborting the document.
func (f *Fetcher) FetchAll(ctx context.Context, plan layout.Plan) map[int]*Image {
	results := make(map[int]*Image, len(plan))
	slots := make([]*Image, len(plan))

	workers := f.Workers
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i := range plan {
		if plan[i].Kind != layout.KindPhotoPage {
			continue
		}
		wg.Add(1)
		go func(idx int, url string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			img, err := f.fetchOne(ctx, url)
			if err != nil {
				f.Logger.Warn("skipping photo page", "url", url, "err", err)
				return
			}
			slots[idx] = img
		}(i, plan[i].Media.URL)
	}
	wg.Wait()

	for i, img := range slots {
		if img != nil {
			results[i] = img
		}
	}
	return results
}

func (f *Fetcher) fetchOne(ctx context.Context, url string) (*Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("media: building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media: fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media: fetching %s: status %d", url, resp.StatusCode)
	}

	maxBytes := f.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("media: reading %s: %w", url, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("media: %s exceeds %d byte limit", url, maxBytes)
	}

	return Process(data)
}

package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultFetchTimeout = 30 * time.Second

// Source yields the raw CSV bytes of the dataset.
type Source interface {
	// Name identifies the source in logs and stats.
	Name() string
	// Open returns a reader over the CSV. Callers must close it.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// URLSource downloads the dataset over HTTP.
type URLSource struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
	client     *resty.Client
}

// NewURLSource creates a source fetching url.
func NewURLSource(url string, opts ...URLOption) *URLSource {
	s := &URLSource{url: url, timeout: defaultFetchTimeout}
	for _, opt := range opts {
		opt(s)
	}
	if s.httpClient != nil {
		s.client = resty.NewWithClient(s.httpClient)
	} else {
		s.client = resty.New()
	}
	s.client.SetTimeout(s.timeout)
	return s
}

// Name implements Source.
func (s *URLSource) Name() string { return s.url }

// Open implements Source. The body is read fully before returning.
func (s *URLSource) Open(ctx context.Context) (io.ReadCloser, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, s.url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s: status %d", ErrFetch, s.url, resp.StatusCode())
	}
	return io.NopCloser(bytes.NewReader(resp.Body())), nil
}

// FileSource reads the dataset from a local file.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name implements Source.
func (s *FileSource) Name() string { return s.path }

// Open implements Source.
func (s *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return f, nil
}

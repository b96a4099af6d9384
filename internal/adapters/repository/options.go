// Package repository loads the medal dataset and keeps the immutable copy
// shared by every request.
package repository

import (
	"net/http"
	"time"

	"github.com/okian/medalboard/pkg/logger"
)

// Option applies a configuration option to the DatasetStore.
type Option func(*DatasetStore)

// WithLogger logs load outcomes through l.
func WithLogger(l logger.Logger) Option {
	return func(s *DatasetStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// URLOption applies a configuration option to the URLSource.
type URLOption func(*URLSource)

// WithTimeout bounds the whole fetch.
func WithTimeout(d time.Duration) URLOption {
	return func(s *URLSource) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client (tests, proxies).
func WithHTTPClient(c *http.Client) URLOption {
	return func(s *URLSource) {
		if c != nil {
			s.httpClient = c
		}
	}
}

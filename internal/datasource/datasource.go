// Package datasource abstracts where raw roster bytes come from.
package datasource

import (
	"context"
	"io"
)

// Source yields a readable stream of raw roster data.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

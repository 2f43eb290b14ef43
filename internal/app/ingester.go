package app

import (
	"context"
	"io"

	"github.com/five82/gravplot/internal/ingest"
)

// StartIngest launches a background goroutine that feeds r through the
// ingestor until EOF, a decode error, or cancellation. It returns immediately;
// the returned channel yields the ingestion result exactly once.
func StartIngest(ctx context.Context, ingestor *ingest.Ingestor, r io.Reader) <-chan error {
	errc := make(chan error, 1)
	go func() {
		errc <- ingestor.Run(ctx, r)
	}()
	return errc
}

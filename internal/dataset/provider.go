package dataset

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/jengzang/borough-records-go/internal/models"
)

// Source produces the raw records for a snapshot.
type Source interface {
	Records() ([]models.RawRecord, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func() ([]models.RawRecord, error)

// Records calls f
func (f SourceFunc) Records() ([]models.RawRecord, error) {
	return f()
}

// Provider builds a snapshot on first access and reuses it afterwards.
// Concurrent first callers share one construction; a failed load is not retried.
type Provider struct {
	source Source
	opts   []Option
	logger *slog.Logger

	once     sync.Once
	snapshot *Snapshot
	err      error
}

// NewProvider creates a lazy snapshot provider
func NewProvider(source Source, logger *slog.Logger, opts ...Option) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{source: source, opts: opts, logger: logger}
}

// Snapshot returns the snapshot, loading it on the first call.
func (p *Provider) Snapshot() (*Snapshot, error) {
	p.once.Do(func() {
		raw, err := p.source.Records()
		if err != nil {
			p.err = fmt.Errorf("failed to read records: %w", err)
			return
		}
		p.snapshot, p.err = Load(raw, p.opts...)
		if p.err != nil {
			return
		}

		attrs := []any{"records", p.snapshot.Len()}
		if oldest, newest, ok := p.snapshot.DateBounds(); ok {
			attrs = append(attrs,
				"oldest", oldest.Format(models.DateLayout),
				"newest", newest.Format(models.DateLayout))
		}
		p.logger.Info("snapshot loaded", attrs...)
	})
	return p.snapshot, p.err
}

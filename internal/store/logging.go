package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/mededu/internal/model"
)

// loggingStore is a decorator that records every load and save.
type loggingStore struct {
	inner  Store
	logger *slog.Logger
}

// WithLogging wraps a Store so each call is logged at debug level, and
// failures at error level.
func WithLogging(s Store, logger *slog.Logger) Store {
	if logger == nil {
		return s
	}
	return &loggingStore{inner: s, logger: logger}
}

func (l *loggingStore) Load(ctx context.Context) (*model.Document, error) {
	start := time.Now()
	doc, err := l.inner.Load(ctx)
	if err != nil {
		l.logger.ErrorContext(ctx, "load document", "err", err)
		return nil, err
	}
	l.logger.DebugContext(ctx, "load document",
		"topics", len(doc.Topics),
		"latency", time.Since(start))
	return doc, nil
}

func (l *loggingStore) Save(ctx context.Context, doc *model.Document) error {
	start := time.Now()
	if err := l.inner.Save(ctx, doc); err != nil {
		l.logger.ErrorContext(ctx, "save document", "err", err)
		return err
	}
	l.logger.DebugContext(ctx, "save document",
		"topics", len(doc.Topics),
		"latency", time.Since(start))
	return nil
}

func (l *loggingStore) Close() error {
	return l.inner.Close()
}

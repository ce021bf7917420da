// Package export gates and performs dataset exports: it refuses incomplete
// field lists, keeps at most one request in flight, saves the downloaded file
// and reports the outcome through a notice.
package export

import (
	"context"
	"sync/atomic"
	"time"

	"litedata/internal/api"
	"litedata/internal/errors"
	"litedata/internal/fields"
	"litedata/internal/log"
	"litedata/pkg/types"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/semaphore"
)

const (
	// DefaultMaxRows bounds the row count unless configured otherwise.
	DefaultMaxRows = 1000

	MsgSuccess = "Data generated successfully!"
	MsgFailure = "Error generating data. Please try again."
)

// Exporter performs the remote export call.
type Exporter interface {
	Export(ctx context.Context, req types.ExportRequest) (*api.Download, error)
}

// Notifier shows the settled outcome.
type Notifier interface {
	Success(message, detail string) types.Notice
	Failure(message, detail string) types.Notice
}

// Result describes a saved export.
type Result struct {
	Path   string
	Size   int
	Rows   int
	Format types.FileFormat
}

// Gate is the submission gate.
type Gate struct {
	client  Exporter
	saver   Saver
	board   Notifier
	maxRows int
	now     func() time.Time
	sem     *semaphore.Weighted
	busy    atomic.Bool
}

// Option configures a Gate.
type Option func(*Gate)

// WithMaxRows sets the upper row bound. Zero means unbounded.
func WithMaxRows(n int) Option {
	return func(g *Gate) { g.maxRows = n }
}

// WithClock replaces time.Now for fallback filenames.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// NewGate creates a gate.
func NewGate(client Exporter, saver Saver, board Notifier, opts ...Option) *Gate {
	g := &Gate{
		client:  client,
		saver:   saver,
		board:   board,
		maxRows: DefaultMaxRows,
		now:     time.Now,
		sem:     semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MaxRows returns the configured bound; zero is unbounded.
func (g *Gate) MaxRows() int {
	return g.maxRows
}

// InFlight reports whether an export has not settled yet.
func (g *Gate) InFlight() bool {
	return g.busy.Load()
}

// Enabled reports whether the submit trigger should be active for list.
func (g *Gate) Enabled(list []types.FieldSpec) bool {
	return fields.Valid(list) && !g.InFlight()
}

// CheckCount validates the requested row count against the bound.
func (g *Gate) CheckCount(count int) error {
	if count < 1 || (g.maxRows > 0 && count > g.maxRows) {
		return errors.NewInvalidInputError("row count out of range", nil).
			WithContext("count", count).
			WithContext("max", g.maxRows)
	}
	return nil
}

// Submit exports list. Precondition failures return an error without a
// request or a notice. Request and save failures post exactly one error
// notice. The list is only read.
func (g *Gate) Submit(ctx context.Context, list []types.FieldSpec, count int, format types.FileFormat) (*Result, error) {
	if !fields.Valid(list) {
		return nil, errors.ErrNotReady
	}
	if err := g.CheckCount(count); err != nil {
		return nil, err
	}
	if !format.Valid() {
		return nil, errors.NewInvalidInputError("unsupported file format", nil).WithContext("format", string(format))
	}
	if !g.sem.TryAcquire(1) {
		return nil, errors.ErrInFlight
	}
	g.busy.Store(true)
	defer func() {
		g.busy.Store(false)
		g.sem.Release(1)
	}()

	req := types.ExportRequest{
		Fields:     append([]types.FieldSpec(nil), list...),
		Count:      count,
		FileFormat: format,
	}
	logger := log.LogWithFields(
		log.F("fields", len(req.Fields)),
		log.F("count", count),
		log.F("format", string(format)),
	)
	logger.Info("export started")

	download, err := g.client.Export(ctx, req)
	if err != nil {
		return nil, g.fail(logger, err, "export request failed")
	}

	name := ResolveFilename(download.FilenameHint, format, g.now())
	path, err := g.saver.Save(name, download.Data)
	if err != nil {
		return nil, g.fail(logger, err, "saving export failed")
	}

	res := &Result{Path: path, Size: len(download.Data), Rows: count, Format: format}
	g.board.Success(MsgSuccess, path+" ("+humanize.Bytes(uint64(res.Size))+")")
	logger.With(log.F("path", path), log.F("bytes", res.Size)).Info("export saved")
	return res, nil
}

func (g *Gate) fail(logger *log.Logger, err error, msg string) error {
	logger.WithError(err).Error(msg)
	g.board.Failure(MsgFailure, err.Error())
	return err
}

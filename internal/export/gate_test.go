package export

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"litedata/internal/api"
	"litedata/internal/errors"
	"litedata/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeExporter struct {
	mu       sync.Mutex
	calls    []types.ExportRequest
	download *api.Download
	err      error
	started  chan struct{}
	release  chan struct{}
}

func (f *fakeExporter) Export(ctx context.Context, req types.ExportRequest) (*api.Download, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.download, f.err
}

func (f *fakeExporter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type recordingBoard struct {
	mu       sync.Mutex
	success  []string
	failures []string
}

func (b *recordingBoard) Success(message, detail string) types.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.success = append(b.success, message+"|"+detail)
	return types.Notice{Level: types.NoticeSuccess, Message: message, Detail: detail}
}

func (b *recordingBoard) Failure(message, detail string) types.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = append(b.failures, message)
	return types.Notice{Level: types.NoticeError, Message: message, Detail: detail}
}

var validList = []types.FieldSpec{{DataType: "email", Name: "contact"}}

func fixedClock() time.Time { return time.Unix(1714564800, 0) }

func TestSubmitRejectsInvalidInput(t *testing.T) {
	exp := &fakeExporter{}
	board := &recordingBoard{}
	g := NewGate(exp, DirSaver{Dir: t.TempDir()}, board)

	tests := []struct {
		name   string
		list   []types.FieldSpec
		count  int
		format types.FileFormat
		check  func(error) bool
	}{
		{"incomplete list", []types.FieldSpec{{DataType: "email"}}, 10, types.FormatCSV, errors.IsNotReady},
		{"empty list", nil, 10, types.FormatCSV, errors.IsNotReady},
		{"zero rows", validList, 0, types.FormatCSV, errors.IsInvalidInputError},
		{"too many rows", validList, DefaultMaxRows + 1, types.FormatCSV, errors.IsInvalidInputError},
		{"unknown format", validList, 10, types.FileFormat("parquet"), errors.IsInvalidInputError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := g.Submit(context.Background(), tt.list, tt.count, tt.format)
			assert.Nil(t, res)
			require.Error(t, err)
			assert.True(t, tt.check(err), err.Error())
		})
	}

	assert.Zero(t, exp.callCount(), "nothing may be sent for an invalid submission")
	assert.Empty(t, board.failures)
	assert.Empty(t, board.success)
}

func TestUnboundedRows(t *testing.T) {
	g := NewGate(&fakeExporter{}, DirSaver{}, &recordingBoard{}, WithMaxRows(0))
	assert.NoError(t, g.CheckCount(1_000_000))
	assert.Error(t, g.CheckCount(0))
}

func TestSubmitSavesWithServerFilename(t *testing.T) {
	dir := t.TempDir()
	exp := &fakeExporter{download: &api.Download{
		FilenameHint: "generated_data_2024-05-01_12-00-00.csv",
		Data:         []byte("contact\na@example.com\n"),
	}}
	board := &recordingBoard{}
	g := NewGate(exp, DirSaver{Dir: dir}, board, WithClock(fixedClock))

	res, err := g.Submit(context.Background(), validList, 1, types.FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "generated_data_2024-05-01_12-00-00.csv"), res.Path)
	content, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, "contact\na@example.com\n", string(content))

	require.Len(t, exp.calls, 1)
	assert.Equal(t, types.ExportRequest{Fields: validList, Count: 1, FileFormat: types.FormatCSV}, exp.calls[0])

	require.Len(t, board.success, 1)
	assert.Contains(t, board.success[0], MsgSuccess)
	assert.Contains(t, board.success[0], "22 B")
	assert.Empty(t, board.failures)
	assert.False(t, g.InFlight())
}

func TestSubmitFallsBackToSynthesizedName(t *testing.T) {
	dir := t.TempDir()
	exp := &fakeExporter{download: &api.Download{Data: []byte("<table></table>")}}
	g := NewGate(exp, DirSaver{Dir: dir}, &recordingBoard{}, WithClock(fixedClock))

	res, err := g.Submit(context.Background(), validList, 5, types.FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "generated_data_1714564800.html"), res.Path)
}

func TestSubmitFailurePostsOneErrorNotice(t *testing.T) {
	exp := &fakeExporter{err: errors.NewRequestError("unexpected status", "http://svc/api/data/export", 500, errors.UnexpectedStatus, nil)}
	board := &recordingBoard{}
	g := NewGate(exp, DirSaver{Dir: t.TempDir()}, board)

	list := []types.FieldSpec{{DataType: "email", Name: "contact"}}
	res, err := g.Submit(context.Background(), list, 10, types.FormatCSV)
	assert.Nil(t, res)
	assert.True(t, errors.IsRequestError(err))

	assert.Equal(t, []string{MsgFailure}, board.failures)
	assert.Empty(t, board.success)
	assert.Equal(t, []types.FieldSpec{{DataType: "email", Name: "contact"}}, list)
	assert.False(t, g.InFlight())
	assert.True(t, g.Enabled(list))
}

type failingSaver struct{}

func (failingSaver) Save(name string, _ []byte) (string, error) {
	return "", errors.NewFileError("cannot create file", name, errors.FileAccessDenied, nil)
}

func TestSaveFailurePostsOneErrorNotice(t *testing.T) {
	exp := &fakeExporter{download: &api.Download{Data: []byte("x")}}
	board := &recordingBoard{}
	g := NewGate(exp, failingSaver{}, board)

	_, err := g.Submit(context.Background(), validList, 1, types.FormatCSV)
	assert.Equal(t, errors.FileAccessDenied, errors.KindOf(err))
	assert.Len(t, board.failures, 1)
}

func TestSecondSubmitWhileInFlight(t *testing.T) {
	defer goleak.VerifyNone(t)

	exp := &fakeExporter{
		download: &api.Download{Data: []byte("a,b\n")},
		started:  make(chan struct{}, 1),
		release:  make(chan struct{}),
	}
	board := &recordingBoard{}
	g := NewGate(exp, DirSaver{Dir: t.TempDir()}, board)

	assert.True(t, g.Enabled(validList))

	done := make(chan error, 1)
	go func() {
		_, err := g.Submit(context.Background(), validList, 1, types.FormatCSV)
		done <- err
	}()
	<-exp.started

	assert.True(t, g.InFlight())
	assert.False(t, g.Enabled(validList))

	_, err := g.Submit(context.Background(), validList, 1, types.FormatCSV)
	assert.True(t, errors.IsInFlight(err))
	assert.Equal(t, 1, exp.callCount())

	close(exp.release)
	require.NoError(t, <-done)

	assert.False(t, g.InFlight())
	assert.Len(t, board.success, 1)
	assert.Empty(t, board.failures)
}

func TestContextIsPassedThrough(t *testing.T) {
	defer goleak.VerifyNone(t)

	exp := &fakeExporter{started: make(chan struct{}, 1), release: make(chan struct{})}
	board := &recordingBoard{}
	g := NewGate(exp, DirSaver{Dir: t.TempDir()}, board)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := g.Submit(ctx, validList, 1, types.FormatCSV)
		done <- err
	}()
	<-exp.started
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Len(t, board.failures, 1)
	assert.False(t, g.InFlight())
}

// Package session builds the application root: the field list, the allowed
// type set, the submission gate, the notice board and the display preference.
// Front ends receive a Session instead of reaching for globals.
package session

import (
	"context"
	"net/http"
	"sync"

	"litedata/internal/api"
	"litedata/internal/catalog"
	"litedata/internal/config"
	"litedata/internal/editor"
	"litedata/internal/export"
	"litedata/internal/fields"
	"litedata/internal/log"
	"litedata/internal/notify"
	"litedata/internal/prefs"
	"litedata/pkg/types"
)

// ConfigFetcher loads the allowed type identifiers.
type ConfigFetcher interface {
	FetchConfig(ctx context.Context) (*api.ServiceConfig, error)
}

// Session owns the state shared by one front end.
type Session struct {
	Config *config.Config
	Fields *fields.Store
	Prefs  *prefs.Store
	Board  *notify.Board
	Client *api.Client
	Gate   *export.Gate

	fetcher  ConfigFetcher
	prefPath string

	mu        sync.RWMutex
	allowed   catalog.AllowedSet
	loaded    bool
	listeners []func(catalog.AllowedSet)

	wg sync.WaitGroup
}

type options struct {
	storage    prefs.Storage
	saver      export.Saver
	httpClient *http.Client
	fetcher    ConfigFetcher
	exporter   export.Exporter
}

// Option customizes New.
type Option func(*options)

// WithStorage replaces the preference storage. The file watcher is only
// started for the default file storage.
func WithStorage(s prefs.Storage) Option {
	return func(o *options) { o.storage = s }
}

// WithSaver replaces the download saver.
func WithSaver(s export.Saver) Option {
	return func(o *options) { o.saver = s }
}

// WithHTTPClient replaces the http.Client used for the service.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithFetcher replaces the allowed-types source.
func WithFetcher(f ConfigFetcher) Option {
	return func(o *options) { o.fetcher = f }
}

// WithExporter replaces the export endpoint client.
func WithExporter(e export.Exporter) Option {
	return func(o *options) { o.exporter = e }
}

// New constructs a session from cfg. A preference storage failure is logged
// and the session continues with the default mode.
func New(cfg *config.Config, opts ...Option) *Session {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	clientOpts := []api.Option{api.WithTimeout(cfg.API.Timeout)}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(o.httpClient))
	}
	client := api.NewClient(cfg.API.BaseURL, clientOpts...)

	s := &Session{
		Config:  cfg,
		Fields:  fields.NewStore(fields.WithNamePolicy(cfg.NamePolicy())),
		Board:   notify.NewBoard(notify.WithTTL(cfg.Export.NoticeTTL)),
		Client:  client,
		fetcher: o.fetcher,
	}
	if s.fetcher == nil {
		s.fetcher = client
	}

	storage := o.storage
	if storage == nil {
		s.prefPath = config.ExpandPath(cfg.Prefs.Path)
		storage = prefs.NewFileStorage(s.prefPath)
	}
	s.Prefs, _ = prefs.NewStore(storage)

	saver := o.saver
	if saver == nil {
		saver = export.DirSaver{Dir: config.ExpandPath(cfg.Export.OutputDir)}
	}
	exporter := o.exporter
	if exporter == nil {
		exporter = client
	}
	s.Gate = export.NewGate(exporter, saver, s.Board, export.WithMaxRows(cfg.Export.MaxRows))
	return s
}

// Start launches the one-shot allowed-types fetch and, when configured, the
// preference file watcher. Both stop with ctx; Wait blocks until they have.
func (s *Session) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.fetchAllowed(ctx)
	}()

	if s.prefPath != "" && s.Config.Prefs.Watch {
		done, err := prefs.Follow(ctx, s.Prefs, s.prefPath)
		if err != nil {
			log.LogWithError(err).Warn("not following preference file")
			return
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			<-done
		}()
	}
}

// Wait blocks until background work started by Start has finished.
func (s *Session) Wait() {
	s.wg.Wait()
}

// fetchAllowed runs once. A failure leaves the set empty; there is no retry.
func (s *Session) fetchAllowed(ctx context.Context) {
	cfg, err := s.fetcher.FetchConfig(ctx)
	if err != nil {
		log.LogWithError(err).Error("cannot load allowed data types")
		s.setAllowed(catalog.AllowedSet{})
		return
	}
	set := catalog.NewAllowedSet(cfg.AllowedDataTypes)
	log.LogWithFields(log.F("count", set.Len())).Info("allowed data types loaded")
	s.setAllowed(set)
}

func (s *Session) setAllowed(set catalog.AllowedSet) {
	s.mu.Lock()
	s.allowed = set
	s.loaded = true
	listeners := append([]func(catalog.AllowedSet){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(set)
	}
}

// Allowed returns the current allowed set. It is empty until the fetch
// succeeds.
func (s *Session) Allowed() catalog.AllowedSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allowed
}

// AllowedLoaded reports whether the fetch has settled, successfully or not.
func (s *Session) AllowedLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// OnAllowed registers fn to run when the fetch settles.
func (s *Session) OnAllowed(fn func(catalog.AllowedSet)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Rows derives editor rows from the current field list.
func (s *Session) Rows() []editor.Row {
	return editor.Rows(s.Fields, s.Allowed())
}

// CanSubmit reports whether the submit trigger should be enabled.
func (s *Session) CanSubmit() bool {
	return s.Gate.Enabled(s.Fields.Fields())
}

// Submit exports the current field list.
func (s *Session) Submit(ctx context.Context, count int, format types.FileFormat) (*export.Result, error) {
	return s.Gate.Submit(ctx, s.Fields.Fields(), count, format)
}

// Package app implements the application layer for gqltag.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.trai.ch/gqltag/internal/adapters/extract"
	"go.trai.ch/gqltag/internal/adapters/fs"
	"go.trai.ch/gqltag/internal/adapters/watcher"
	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/core/ports"
	"go.trai.ch/gqltag/internal/engine/astcache"
	"go.trai.ch/gqltag/internal/engine/parser"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.SourceReader
	signer       ports.Signer
	grammar      ports.DocumentParser
	logger       ports.Logger
	tracer       ports.Tracer
	watcher      ports.Watcher
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.SourceReader,
	signer ports.Signer,
	grammar ports.DocumentParser,
	log ports.Logger,
	tracer ports.Tracer,
	w ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		reader:       reader,
		signer:       signer,
		grammar:      grammar,
		logger:       log,
		tracer:       tracer,
		watcher:      w,
	}
}

// ScanOptions configuration for the Scan method.
type ScanOptions struct {
	// Dir is the directory the configuration lookup starts from.
	Dir string
	// Jobs bounds parse parallelism. Zero means one worker per CPU.
	Jobs int
}

// ScanFailure records a file that could not be parsed.
type ScanFailure struct {
	Path string
	Err  error
}

// ScanReport summarizes one scan pass over a project.
type ScanReport struct {
	Root        string
	Matched     int
	Parsed      int
	Skipped     int
	Definitions []domain.Definition
	Failures    []ScanFailure
}

// Names returns the collected definition names in report order.
func (r *ScanReport) Names() []string {
	names := make([]string, len(r.Definitions))
	for i, def := range r.Definitions {
		names[i] = def.Name
	}
	return names
}

// Scan discovers every candidate file under the project root, parses the
// GraphQL literals embedded in each, and returns the collected definitions.
// Files whose parse fails are reported individually; a scan with failures
// returns the report alongside domain.ErrScanFailed.
func (a *App) Scan(ctx context.Context, opts ScanOptions) (*ScanReport, error) {
	ctx, span := a.tracer.Start(ctx, "scan")
	defer span.End()

	pipe, err := a.buildPipeline(opts.Dir)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	report, err := pipe.scan(ctx, opts.Jobs)
	if err != nil {
		span.RecordError(err)
		return report, err
	}

	span.SetAttribute("files", report.Parsed)
	span.SetAttribute("definitions", len(report.Definitions))
	return report, nil
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Dir is the directory the configuration lookup starts from.
	Dir string
	// Debounce is the coalescing window for file events. Zero selects the
	// default window.
	Debounce time.Duration
	// OnUpdate, when set, receives the report of every incremental pass.
	// Used by tests to observe progress.
	OnUpdate func(*ScanReport)
}

// Watch runs an initial scan and then keeps the document cache current as
// files change, until the context is canceled.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	pipe, err := a.buildPipeline(opts.Dir)
	if err != nil {
		return err
	}

	report, err := pipe.scan(ctx, 0)
	if err != nil {
		if report == nil {
			return err
		}
		// Parse failures are not fatal in watch mode. The offending
		// files are re-parsed as soon as they change.
		a.logger.Warn(fmt.Sprintf("initial scan: %d of %d files failed", len(report.Failures), report.Matched))
	} else {
		a.logger.Info(fmt.Sprintf("watching %s (%d definitions in %d files)",
			pipe.project.Root, len(report.Definitions), report.Parsed))
	}

	debouncer := watcher.NewDebouncer(opts.Debounce, func(paths []string) {
		report := pipe.update(ctx, paths)
		if report == nil {
			return
		}
		if opts.OnUpdate != nil {
			opts.OnUpdate(report)
		}
	})

	if err := a.watcher.Start(ctx, pipe.project.Root); err != nil {
		return zerr.Wrap(err, "failed to start file watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
		debouncer.Flush()
	}()

	for event := range a.watcher.Events() {
		rel, err := filepath.Rel(pipe.project.Root, event.Path)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if !pipe.discovery.Matches(rel) {
			continue
		}
		debouncer.Add(rel)
	}

	return ctx.Err()
}

// pipeline binds one project's configuration to its extraction, parsing,
// and caching machinery.
type pipeline struct {
	project   *domain.Project
	discovery *fs.Discovery
	memo      *extract.Memoized
	parser    *parser.Parser
	cache     *astcache.Cache
	logger    ports.Logger
}

func (a *App) buildPipeline(dir string) (*pipeline, error) {
	if dir == "" {
		dir = "."
	}

	project, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	discovery, err := fs.NewDiscovery(project.Include, project.Exclude)
	if err != nil {
		return nil, err
	}

	extractor, err := extract.ForProject(project)
	if err != nil {
		return nil, err
	}
	memo := extract.NewMemoized(extractor, a.signer)

	p := parser.New(a.reader, memo, a.grammar, project.Marker, domain.ExtractOptions{
		ValidateNames: project.ValidateNames,
	})

	return &pipeline{
		project:   project,
		discovery: discovery,
		memo:      memo,
		parser:    p,
		cache:     astcache.New(project.Root, p.ParseFile, a.signer),
		logger:    a.logger,
	}, nil
}

// scan runs one full pass over the project.
func (p *pipeline) scan(ctx context.Context, jobs int) (*ScanReport, error) {
	files, err := p.discovery.Discover(p.project.Root)
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	report := &ScanReport{Root: p.project.Root, Matched: len(files)}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	filter := p.parser.FileFilter(p.project.Root)

	var mu sync.Mutex
	docs := make([]*domain.Document, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, rel := range files {
		g.Go(func() error {
			file := domain.NewFile(rel)
			if !filter(file) {
				mu.Lock()
				report.Skipped++
				mu.Unlock()
				return nil
			}

			doc, err := p.cache.Get(ctx, file)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failures = append(report.Failures, ScanFailure{Path: rel, Err: err})
				return nil
			}
			report.Parsed++
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	// Definitions are collected after the fact so the report order follows
	// the sorted file list rather than goroutine completion order.
	for _, doc := range docs {
		if doc != nil {
			report.Definitions = append(report.Definitions, doc.Definitions...)
		}
	}
	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].Path < report.Failures[j].Path
	})

	if len(report.Failures) > 0 {
		for _, f := range report.Failures {
			p.logger.Error(f.Err)
		}
		return report, zerr.With(
			zerr.With(domain.ErrScanFailed, "failed", len(report.Failures)),
			"matched", report.Matched,
		)
	}

	return report, nil
}

// update re-parses a batch of changed paths and evicts entries for paths
// that no longer exist. Returns nil when nothing relevant changed.
func (p *pipeline) update(ctx context.Context, relPaths []string) *ScanReport {
	if ctx.Err() != nil {
		return nil
	}

	sort.Strings(relPaths)
	p.cache.Invalidate(relPaths)

	report := &ScanReport{Root: p.project.Root, Matched: len(relPaths)}
	filter := p.parser.FileFilter(p.project.Root)

	for _, rel := range relPaths {
		file := domain.NewFile(rel)
		if !filter(file) {
			// Unreadable or markerless now. Either way the cached
			// document no longer reflects the file.
			p.cache.Remove(rel)
			p.memo.Forget(rel)
			report.Skipped++
			continue
		}

		doc, err := p.cache.Get(ctx, file)
		if err != nil {
			report.Failures = append(report.Failures, ScanFailure{Path: rel, Err: err})
			p.logger.Error(err)
			continue
		}
		report.Parsed++
		report.Definitions = append(report.Definitions, doc.Definitions...)
		p.logger.Info(fmt.Sprintf("updated %s (%d definitions)", rel, len(doc.Definitions)))
	}

	return report
}

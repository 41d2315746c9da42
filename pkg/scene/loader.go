package scene

import (
	"sync"
	"sync/atomic"

	"github.com/philipparndt/gonebula/pkg/tri"
	"go.uber.org/zap"
)

// Generation identifies one load request
type Generation uint64

// LoadFunc receives the outcome of a background load. It runs on the
// loader goroutine; hand it to the UI thread before touching a Scene.
type LoadFunc func(gen Generation, path string, res *tri.Result, err error)

// Loader parses files off the caller's goroutine. Every request gets a
// new generation and only the newest one counts; older results are still
// delivered but IsLatest reports false for them.
type Loader struct {
	gen  atomic.Uint64
	wg   sync.WaitGroup
	opts []tri.Option
	log  *zap.Logger
}

// NewLoader creates a loader parsing with opts
func NewLoader(log *zap.Logger, opts ...tri.Option) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{opts: opts, log: log}
}

// Load starts parsing path in the background and returns its generation
func (l *Loader) Load(path string, done LoadFunc) Generation {
	gen := Generation(l.gen.Add(1))
	l.log.Debug("Loading", zap.String("path", path), zap.Uint64("generation", uint64(gen)))

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		res, err := tri.ParseFile(path, l.opts...)
		if err != nil {
			l.log.Warn("Background load failed", zap.String("path", path), zap.Error(err))
		}
		if !l.IsLatest(gen) {
			l.log.Debug("Load superseded", zap.String("path", path), zap.Uint64("generation", uint64(gen)))
		}
		done(gen, path, res, err)
	}()
	return gen
}

// IsLatest reports whether gen is the most recent request
func (l *Loader) IsLatest(gen Generation) bool {
	return uint64(gen) == l.gen.Load()
}

// Wait blocks until every started load has delivered
func (l *Loader) Wait() {
	l.wg.Wait()
}

package polycore

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/klauspost/cpuid/v2"
	"github.com/viterin/vek/vek32"
)

// nopHandler discards every record and reports itself disabled, so callers
// skip formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger installs the logger used by the device and its loaders. The
// package is silent until SetLogger is called; passing nil silences it again.
//
// Levels in use:
//   - [slog.LevelDebug]: per-scene statistics and host information
//   - [slog.LevelWarn]: draw calls skipped because a buffer was missing
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}

	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

var hostOnce sync.Once

// logHost records the CPU the rasterizer runs on, once per process.
func logHost() {
	if !Logger().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	hostOnce.Do(func() {
		Logger().Debug("polycore: host",
			"cpu", cpuid.CPU.BrandName,
			"cores", runtime.NumCPU(),
			"avx2", cpuid.CPU.Supports(cpuid.AVX2),
			"simd", vek32.Info(),
		)
	})
}

package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline, cache and server events as debug log lines.
// The CLI installs it for --verbose runs.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that write to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnParseStart(_ context.Context, name string) {
	h.logger.Debug("parse started", "input", name)
}

func (h *LogHooks) OnParseComplete(_ context.Context, name string, rows, cols int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("parse failed", "input", name, "duration", d, "err", err)
		return
	}
	h.logger.Debug("parsed grid", "input", name, "rows", rows, "cols", cols, "duration", d)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, name string, cells int) {
	h.logger.Debug("layout started", "input", name, "cells", cells)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, name string, shapes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("layout failed", "input", name, "duration", d, "err", err)
		return
	}
	h.logger.Debug("computed layout", "input", name, "shapes", shapes, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, name, format string) {
	h.logger.Debug("render started", "input", name, "format", format)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, name, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "input", name, "format", format, "duration", d, "err", err)
		return
	}
	h.logger.Debug("rendered output", "input", name, "format", format, "bytes", size, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "route", route, "status", status, "duration", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ ServerHooks   = (*LogHooks)(nil)
)

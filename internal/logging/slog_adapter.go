// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

// NewSlogLogger returns an slog.Logger whose records are written through
// the global zerolog logger. It exists for libraries that only speak slog,
// such as sutureslog.
func NewSlogLogger() *slog.Logger {
	return slog.New(&zerologBridge{zl: Logger()})
}

// zerologBridge implements slog.Handler over a zerolog.Logger. Group names
// become dot-joined key prefixes, matching zerolog's flat JSON output.
type zerologBridge struct {
	zl     zerolog.Logger
	attrs  []slog.Attr
	prefix string
}

func (b *zerologBridge) Enabled(_ context.Context, level slog.Level) bool {
	return bridgeLevel(level) >= b.zl.GetLevel()
}

//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (b *zerologBridge) Handle(_ context.Context, record slog.Record) error {
	ev := b.zl.WithLevel(bridgeLevel(record.Level))
	for _, attr := range b.attrs {
		ev = b.appendAttr(ev, attr, b.prefix)
	}
	record.Attrs(func(attr slog.Attr) bool {
		ev = b.appendAttr(ev, attr, b.prefix)
		return true
	})
	ev.Msg(record.Message)
	return nil
}

func (b *zerologBridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append(append([]slog.Attr{}, b.attrs...), attrs...)
	return &zerologBridge{zl: b.zl, attrs: merged, prefix: b.prefix}
}

func (b *zerologBridge) WithGroup(name string) slog.Handler {
	if name == "" {
		return b
	}
	return &zerologBridge{zl: b.zl, attrs: b.attrs, prefix: joinKey(b.prefix, name)}
}

func (b *zerologBridge) appendAttr(ev *zerolog.Event, attr slog.Attr, prefix string) *zerolog.Event {
	key := joinKey(prefix, attr.Key)
	val := attr.Value.Resolve()

	switch val.Kind() {
	case slog.KindGroup:
		for _, member := range val.Group() {
			ev = b.appendAttr(ev, member, key)
		}
		return ev
	case slog.KindString:
		return ev.Str(key, val.String())
	case slog.KindInt64:
		return ev.Int64(key, val.Int64())
	case slog.KindUint64:
		return ev.Uint64(key, val.Uint64())
	case slog.KindFloat64:
		return ev.Float64(key, val.Float64())
	case slog.KindBool:
		return ev.Bool(key, val.Bool())
	case slog.KindDuration:
		return ev.Dur(key, val.Duration())
	case slog.KindTime:
		return ev.Time(key, val.Time())
	default:
		return ev.Interface(key, val.Any())
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return strings.Join([]string{prefix, key}, ".")
}

// bridgeLevel maps slog levels onto zerolog's. Levels between the named
// ones round down.
func bridgeLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

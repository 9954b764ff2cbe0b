// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user verbosity level and
// default structured logger setup used by valgen tools.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set from command line flags through [LevelFromFlags]. The default
// user verbosity level is [slog.LevelWarn], or [slog.LevelDebug] and
// [slog.LevelError] for debug and release builds respectively.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// levelVar tracks [UserLevel] for the handler installed by [SetDefault],
// so that later changes through [SetLevel] take effect immediately.
var levelVar slog.LevelVar

// SetLevel sets [UserLevel] and updates the level of the
// default logger installed by [SetDefault].
func SetLevel(level slog.Level) {
	UserLevel = level
	levelVar.Set(level)
}

// SetDefault installs a text [slog.Handler] writing to w as the
// default logger, filtered at [UserLevel]. It returns the new logger.
func SetDefault(w io.Writer) *slog.Logger {
	levelVar.Set(UserLevel)
	lg := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &levelVar}))
	slog.SetDefault(lg)
	return lg
}

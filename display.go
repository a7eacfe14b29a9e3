// Copyright © 2023-2026 B0ney
// Use of this file is governed by the license that can be found in LICENSE.

package main

import (
	"log"
	"os"

	"github.com/mgutz/ansi"
)

// Slogger is a structured logger for terminal logging. Listing output goes
// to stdout, everything else to stderr so that `list` stays pipeable.
type Slogger struct {
	Info    *log.Logger
	Output  *log.Logger
	Section *log.Logger
	Warning *log.Logger
	Error   *log.Logger
	Hint    *log.Logger
}

func newSlogger(color bool) *Slogger {
	sl := Slogger{}
	sl.Info = log.New(os.Stderr, ":: ", 0)
	sl.Output = log.New(os.Stdout, "", 0)
	sl.Section = log.New(os.Stderr, "==> ", 0)
	sl.Warning = log.New(os.Stderr, ":: Warning: ", 0)
	sl.Error = log.New(os.Stderr, ":: Error: ", 0)
	sl.Hint = log.New(os.Stderr, ":: Hint: ", 0)

	if color {
		sl.Info.SetPrefix(ansi.Color(sl.Info.Prefix(), "magenta+b"))
		sl.Section.SetPrefix(ansi.Color(sl.Section.Prefix(), "green+b"))
		sl.Warning.SetPrefix(ansi.Color(sl.Warning.Prefix(), "blue+b"))
		sl.Error.SetPrefix(ansi.Color(sl.Error.Prefix(), "red+b"))
		sl.Hint.SetPrefix(ansi.Color(sl.Hint.Prefix(), "cyan+b"))
	}

	return &sl
}

// Copyright © 2023-2026 B0ney
// Use of this file is governed by the license that can be found in LICENSE.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/B0ney/mmp-remap/mmp"
)

// Alias tokens used in LMMS project files. A resource "usersample:kick.wav"
// lives under the samples directory configured in .lmmsrc.xml.
const (
	aliasUserProjects  = "userprojects"
	aliasUserSample    = "usersample"
	aliasUserSoundfont = "usersoundfont"
	aliasUserVST       = "uservst"
)

var errLmmsrcPaths = errors.New("lmmsrc has no usable <paths> element")

// lmmsRC holds the directory table from a user's .lmmsrc.xml. Resources in
// project files should not point at absolute paths; keeping them reachable
// through these aliases keeps projects portable.
type lmmsRC struct {
	sf2Dir      string
	vstDir      string
	workingDir  string
	samplesDir  string
	projectsDir string
}

// defaultLmmsrcPath is the stock location of .lmmsrc.xml.
func defaultLmmsrcPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".lmmsrc.xml"), nil
}

// loadLmmsrc reads the alias directory table from an lmmsrc file. The file
// is plain XML; the shared decoder handles it through its XML fallback.
func loadLmmsrc(path string) (*lmmsRC, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := mmp.Decode(data)
	if err != nil {
		return nil, err
	}

	var attrs map[string]string
	doc.Walk(func(e *mmp.Element) {
		if e.Tag != "paths" || attrs != nil {
			return
		}
		attrs = make(map[string]string)
		for _, a := range e.Attrs {
			attrs[a.Name] = a.Value
		}
	})
	if attrs == nil {
		return nil, fmt.Errorf("%w: %s", errLmmsrcPaths, path)
	}

	rc := &lmmsRC{
		sf2Dir:     attrs["sf2dir"],
		vstDir:     attrs["vstdir"],
		workingDir: attrs["workingdir"],
	}
	if rc.workingDir == "" {
		return nil, fmt.Errorf("%w: missing workingdir", errLmmsrcPaths)
	}
	rc.samplesDir = filepath.Join(rc.workingDir, "samples")
	rc.projectsDir = filepath.Join(rc.workingDir, "projects")
	return rc, nil
}

type aliasEntry struct {
	token string
	dir   string
}

// aliases returns the token table in a fixed order so that shortening is
// deterministic.
func (rc *lmmsRC) aliases() []aliasEntry {
	return []aliasEntry{
		{aliasUserProjects, rc.projectsDir},
		{aliasUserSample, rc.samplesDir},
		{aliasUserSoundfont, rc.sf2Dir},
		{aliasUserVST, rc.vstDir},
	}
}

// ExpandAlias resolves an alias-prefixed resource to an absolute path.
// Returns false when the resource has no alias prefix or an unknown one.
func (rc *lmmsRC) ExpandAlias(resource string) (string, bool) {
	token, rest, found := strings.Cut(resource, ":")
	if !found {
		return resource, false
	}
	for _, a := range rc.aliases() {
		if a.token == token && a.dir != "" {
			return filepath.Join(a.dir, rest), true
		}
	}
	return resource, false
}

// ShortenPath rewrites an absolute path under one of the alias directories
// to its alias-prefixed form. Paths outside every alias directory are
// returned unchanged.
func (rc *lmmsRC) ShortenPath(path string) string {
	for _, a := range rc.aliases() {
		if a.dir == "" {
			continue
		}
		prefix := a.dir
		if !strings.HasSuffix(prefix, string(filepath.Separator)) {
			prefix += string(filepath.Separator)
		}
		if strings.HasPrefix(path, prefix) {
			return a.token + ":" + path[len(prefix):]
		}
	}
	return path
}

// Copyright © 2023-2026 B0ney
// Use of this file is governed by the license that can be found in LICENSE.

package remap

import (
	"errors"
	"fmt"

	"github.com/B0ney/mmp-remap/mmp"
)

// ErrKeyNotFound reports a rename of a resource absent from the index.
var ErrKeyNotFound = errors.New("resource not found")

const (
	srcAttr    = "src"
	vestigeTag = "vestige"
	pluginAttr = "plugin"
)

// Reference is one element referencing an external resource through one
// attribute. It observes and mutates the live document tree; it never owns
// any part of it.
type Reference struct {
	attr string
	elem *mmp.Element
}

// Resource returns the current resource string of the referencing element.
func (r *Reference) Resource() string {
	v, _ := r.elem.Attr(r.attr)
	return v
}

// Name returns the tag of the referencing element, e.g. "audiofileprocessor".
func (r *Reference) Name() string {
	return r.elem.Tag
}

func (r *Reference) setResource(value string) {
	r.elem.SetAttr(r.attr, value)
}

// Index groups every resource-bearing element of a project by its literal
// resource string. Keys keep the order the scan first saw them in, which is
// the order used for 1-based ordinal addressing.
type Index struct {
	keys    []string
	buckets map[string][]*Reference
}

// Build scans the document in depth-first order for the two recognized
// shapes: any element with a "src" attribute, and the vestige element's
// "plugin" attribute. Elements with an empty resource string are skipped;
// an empty string has no extension and so no category to guard.
func Build(doc *mmp.Document) *Index {
	idx := &Index{buckets: make(map[string][]*Reference)}
	doc.Walk(func(e *mmp.Element) {
		if _, ok := e.Attr(srcAttr); ok {
			idx.add(&Reference{attr: srcAttr, elem: e})
		}
		if e.Tag == vestigeTag {
			if _, ok := e.Attr(pluginAttr); ok {
				idx.add(&Reference{attr: pluginAttr, elem: e})
			}
		}
	})
	return idx
}

func (idx *Index) add(ref *Reference) {
	resource := ref.Resource()
	if resource == "" {
		return
	}
	if _, ok := idx.buckets[resource]; !ok {
		idx.keys = append(idx.keys, resource)
	}
	idx.buckets[resource] = append(idx.buckets[resource], ref)
}

// Keys returns all resource strings in first-seen order. The returned slice
// is a snapshot; callers iterating while renaming must use it rather than
// re-reading the index mid-loop.
func (idx *Index) Keys() []string {
	out := make([]string, len(idx.keys))
	copy(out, idx.keys)
	return out
}

// Len returns the number of distinct resources.
func (idx *Index) Len() int {
	return len(idx.keys)
}

// KeyAt resolves a 1-based ordinal to its resource string. Ordinal 0 is an
// alias for 1, accommodating off-by-one user input.
func (idx *Index) KeyAt(ordinal int) (string, bool) {
	if ordinal == 0 {
		ordinal = 1
	}
	if ordinal < 1 || ordinal > len(idx.keys) {
		return "", false
	}
	return idx.keys[ordinal-1], true
}

// References returns the elements referencing a resource.
func (idx *Index) References(key string) []*Reference {
	return idx.buckets[key]
}

// Rename moves every reference under old to new in one step, rewriting each
// referencing element's attribute. A fresh new key takes over old's ordinal
// slot; if new already exists, its bucket keeps its slot and old's
// references are appended to it (duplicates are legitimate and preserved).
func (idx *Index) Rename(old, new string) error {
	refs, ok := idx.buckets[old]
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, old)
	}

	for _, ref := range refs {
		ref.setResource(new)
	}

	delete(idx.buckets, old)
	if existing, ok := idx.buckets[new]; ok {
		idx.buckets[new] = append(existing, refs...)
		idx.removeKey(old)
	} else {
		idx.buckets[new] = refs
		idx.replaceKey(old, new)
	}
	return nil
}

func (idx *Index) removeKey(key string) {
	for i, k := range idx.keys {
		if k == key {
			idx.keys = append(idx.keys[:i], idx.keys[i+1:]...)
			return
		}
	}
}

func (idx *Index) replaceKey(old, new string) {
	for i, k := range idx.keys {
		if k == old {
			idx.keys[i] = new
			return
		}
	}
}

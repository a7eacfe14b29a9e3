// Copyright © 2023-2026 B0ney
// Use of this file is governed by the license that can be found in LICENSE.

package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		ext  string
		want Category
		ok   bool
	}{
		{ext: "wav", want: Audio, ok: true},
		{ext: "FLAC", want: Audio, ok: true},
		{ext: ".ogg", want: Audio, ok: true},
		{ext: "sf2", want: Soundfont, ok: true},
		{ext: "sf3", want: Soundfont, ok: true},
		{ext: "dll", want: PluginBinary, ok: true},
		{ext: ".so", want: PluginBinary, ok: true},
		{ext: "", ok: false},
		{ext: "txt", ok: false},
		{ext: ".", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.ext, func(t *testing.T) {
			got, ok := Classify(tc.ext)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestResourceExt(t *testing.T) {
	tests := []struct {
		resource string
		want     string
	}{
		{resource: "usersample:kick.wav", want: "wav"},
		{resource: "drums/kick.wav", want: "wav"},
		{resource: "kick", want: ""},
		{resource: ".wav", want: ""},
		{resource: "samples.v2/a", want: ""},
		{resource: `samples.v2\a`, want: ""},
		{resource: "samples.v2/a.ogg", want: "ogg"},
	}

	for _, tc := range tests {
		t.Run(tc.resource, func(t *testing.T) {
			assert.Equal(t, tc.want, resourceExt(tc.resource))
		})
	}
}

func TestClassifyResource(t *testing.T) {
	tests := []struct {
		resource string
		want     Category
		ok       bool
	}{
		{resource: "usersample:kick.wav", want: Audio, ok: true},
		{resource: "usersoundfont:FluidR3.SF2", want: Soundfont, ok: true},
		{resource: "uservst:vital.dll", want: PluginBinary, ok: true},
		{resource: `C:\vst\Vital.dll`, want: PluginBinary, ok: true},
		{resource: "/home/b0ney/lmms/samples/drums/kick hard.flac", want: Audio, ok: true},
		{resource: "usersample:kick", ok: false},
		{resource: "samples/v2.1/kick", ok: false},
		{resource: ".wav", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.resource, func(t *testing.T) {
			got, ok := ClassifyResource(tc.resource)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

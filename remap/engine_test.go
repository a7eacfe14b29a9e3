// Copyright © 2023-2026 B0ney
// Use of this file is governed by the license that can be found in LICENSE.

package remap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByIndex(t *testing.T) {
	tests := []struct {
		name        string
		ordinal     int
		replacement string
		want        Rename
		wantErr     error
	}{
		{
			name:        "first resource",
			ordinal:     1,
			replacement: "usersample:kick.flac",
			want:        Rename{Old: "usersample:kick.wav", New: "usersample:kick.flac"},
		},
		{
			name:        "zero behaves as one",
			ordinal:     0,
			replacement: "usersample:kick.flac",
			want:        Rename{Old: "usersample:kick.wav", New: "usersample:kick.flac"},
		},
		{
			name:        "out of range",
			ordinal:     9,
			replacement: "usersample:kick.flac",
			wantErr:     ErrIndexOutOfRange,
		},
		{
			name:        "cross category",
			ordinal:     1,
			replacement: "uservst:vital.dll",
			wantErr:     ErrCategoryMismatch,
		},
		{
			name:        "empty extension",
			ordinal:     1,
			replacement: "usersample:kick",
			wantErr:     ErrEmptyExtension,
		},
		{
			// The dot in the directory name is not an extension.
			name:        "extensionless single-character name",
			ordinal:     1,
			replacement: "samples.v2/a",
			wantErr:     ErrEmptyExtension,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, idx := buildSample(t)

			got, err := ByIndex(idx, tc.ordinal, tc.replacement)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Contains(t, idx.Keys(), "usersample:kick.wav")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, idx.Keys(), tc.replacement)
		})
	}
}

func TestByMatchReplacesFirstOccurrenceInMatchingKeysOnly(t *testing.T) {
	_, idx := buildSample(t)

	report := ByMatch(idx, "Loop", "Sample")

	require.Equal(t, 1, report.Changed())
	assert.Equal(t, Rename{
		Old: "userprojects:cyberpunk/resources/Loop funk-7.wav",
		New: "userprojects:cyberpunk/resources/Sample funk-7.wav",
	}, report.Renamed[0])
	assert.Empty(t, report.Rejected)
	assert.Contains(t, idx.Keys(), "usersample:kick.wav")
}

func TestByMatchNoMatches(t *testing.T) {
	_, idx := buildSample(t)
	before := idx.Keys()

	report := ByMatch(idx, "nosuchthing", "whatever")

	assert.Zero(t, report.Changed())
	assert.Empty(t, report.Rejected)
	assert.Equal(t, before, idx.Keys())
}

func TestByMatchRejectionsDoNotAbortSiblings(t *testing.T) {
	// Retargeting a soundfont at a .wav fails the guard; the report carries
	// the rejection instead of an error.
	_, idx := buildSample(t)

	report := ByMatch(idx, ".sf2", ".wav")

	assert.Zero(t, report.Changed())
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, "usersoundfont:FluidR3.sf2", report.Rejected[0].Key)
	assert.ErrorIs(t, report.Rejected[0].Err, ErrCategoryMismatch)
}

func TestByMatchMixedBatchPartiallySucceeds(t *testing.T) {
	_, idx := buildSample(t)

	// "funk-7.wav" -> "funk-8.wav" passes; "vital.dll" untouched; the
	// soundfont key does not contain the needle.
	report := ByMatch(idx, "funk-7", "funk-8")

	require.Equal(t, 1, report.Changed())
	assert.Contains(t, idx.Keys(), "userprojects:cyberpunk/resources/Loop funk-8.wav")
}

func TestByPattern(t *testing.T) {
	_, idx := buildSample(t)

	report, err := ByPattern(idx, `\.wav$`, ".flac")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Changed())
	assert.Contains(t, idx.Keys(), "usersample:kick.flac")
	assert.Contains(t, idx.Keys(), "userprojects:cyberpunk/resources/Loop funk-7.flac")
	// Non-audio keys never matched the pattern.
	assert.Contains(t, idx.Keys(), "usersoundfont:FluidR3.sf2")
	assert.Contains(t, idx.Keys(), "uservst:vital.dll")
}

func TestByPatternInvalidPatternTouchesNothing(t *testing.T) {
	_, idx := buildSample(t)
	before := idx.Keys()

	report, err := ByPattern(idx, `(unclosed`, "x")

	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.Nil(t, report)
	assert.Equal(t, before, idx.Keys())
}

func TestByRewrite(t *testing.T) {
	_, idx := buildSample(t)

	report := ByRewrite(idx, func(key string) string {
		return strings.Replace(key, "userprojects:cyberpunk/resources/", "usersample:", 1)
	})

	require.Equal(t, 1, report.Changed())
	assert.Contains(t, idx.Keys(), "usersample:Loop funk-7.wav")
}

func TestGuardUnclassifiedOldResource(t *testing.T) {
	_, idx := buildSample(t)
	require.NoError(t, idx.Rename("usersample:kick.wav", "usersample:kick.xyz"))

	_, err := ByIndex(idx, 1, "usersample:kick.wav")
	assert.ErrorIs(t, err, ErrUnclassifiedResource)
}

// Copyright © 2023-2026 B0ney
// Use of this file is governed by the license that can be found in LICENSE.

/*
A resource re-mapper for LMMS project files

mmp-remap edits the external resources referenced by an LMMS project:
audio samples, soundfonts and VST plugin binaries. Projects reference such
files through path-like attributes in the project XML, often behind aliases
("usersample:kick.wav") that LMMS resolves through the user's .lmmsrc.xml.
When files move or a project made on another machine needs its paths fixed,
mmp-remap rewrites those references in bulk without opening LMMS.

Usage:

	mmp-remap [OPTIONS] PROJECT COMMAND [ARGS]

For usage options, see:

	mmp-remap -h

Process

The project file is decoded first: compressed .mmpz content is inflated (the
container is a 4-byte big-endian length followed by a zlib stream), anything
else is parsed as plain XML. The decoded tree is scanned once for every
element naming an external resource, and identical resource strings are
grouped so a sample used by ten tracks is re-mapped in one step.

The 'list' command prints each distinct resource with a 1-based index and
its reference count; '-v' adds the referencing elements and, when an
.lmmsrc.xml is readable, the alias-expanded path.

The re-mapping commands select resources three ways: 'idx' by the index
shown in 'list', 'match' by literal substring, 're' by regular expression.
Each selected resource is renamed only if the replacement keeps its
category: an audio file stays an audio file, a soundfont a soundfont, a
plugin binary a plugin binary. In batch commands each resource is an
independent edit, so one rejected replacement does not block the others.

The 'alias' command rewrites absolute resource paths to their portable
alias-prefixed form using the directories configured in .lmmsrc.xml.

When at least one resource changed, the project is written to the '-o' path:
a .mmpz extension produces the compressed container, anything else plain
XML. Existing files are only overwritten after confirmation (or with '-y').
*/
package main

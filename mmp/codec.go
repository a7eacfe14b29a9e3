// Copyright © 2023-2026 B0ney
// Use of this file is governed by the license that can be found in LICENSE.

package mmp

import (
	"bytes"
	"encoding/binary"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ErrFormat reports input that is neither a compressed project container nor
// plain XML.
var ErrFormat = errors.New("not a valid LMMS project file")

// Kind selects the on-disk form used by Encode.
type Kind int

const (
	// Plain is UTF-8 XML text with a declaration, as written by .mmp files.
	Plain Kind = iota
	// Compressed is the .mmpz container: a 4-byte big-endian length of the
	// serialized XML followed by the zlib-compressed XML.
	Compressed
)

// Decode reads a project from its on-disk bytes. The compressed container is
// tried first; anything that fails to inflate is reparsed as plain XML, so
// both .mmp and .mmpz content decode without the caller naming the form.
func Decode(data []byte) (*Document, error) {
	if len(data) > 4 {
		if xmlData, err := inflate(data[4:]); err == nil {
			doc, err := parse(bytes.NewReader(xmlData))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrFormat, err)
			}
			return doc, nil
		}
	}

	doc, err := parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return doc, nil
}

// Encode serializes the document in the requested form.
func Encode(doc *Document, kind Kind) ([]byte, error) {
	var xmlBuf bytes.Buffer
	if kind == Plain {
		xmlBuf.WriteString(xml.Header)
	}
	if err := write(&xmlBuf, doc); err != nil {
		return nil, err
	}
	if kind == Plain {
		return xmlBuf.Bytes(), nil
	}

	var out bytes.Buffer
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(xmlBuf.Len()))
	out.Write(size[:])

	zw := zlib.NewWriter(&out)
	if _, err := zw.Write(xmlBuf.Bytes()); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

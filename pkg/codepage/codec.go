package codepage

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrConversion is returned when the converter reports a non-positive length
// at any stage of a conversion.
var ErrConversion = errors.New("codepage: conversion failed")

const hexDigits = "0123456789abcdef"

// Codec converts between one legacy code page, UTF-8 and UTF-16.
//
// Empty input always converts to empty output with a nil error and without
// calling the Converter, so an empty result paired with a nil error is a
// successful conversion.
type Codec struct {
	cp   CodePage
	conv Converter
}

// New returns a Codec for the legacy code page cp using conv.
func New(cp CodePage, conv Converter) *Codec {
	if conv == nil {
		conv = TextConverter{}
	}
	return &Codec{cp: cp, conv: conv}
}

var defaultCodec = sync.OnceValue(func() *Codec {
	return New(System(), SystemConverter())
})

// Default returns the Codec for the process's active code page.
func Default() *Codec {
	return defaultCodec()
}

// CodePage returns the legacy code page.
func (c *Codec) CodePage() CodePage {
	return c.cp
}

// Passthrough reports whether the legacy code page is UTF-8, in which case
// legacy conversions return their input unchanged.
func (c *Codec) Passthrough() bool {
	return c.cp == UTF8
}

// LegacyToUTF8 decodes legacy-encoded bytes into UTF-8.
func (c *Codec) LegacyToUTF8(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return []byte{}, nil
	}
	if c.Passthrough() {
		return bytes.Clone(b), nil
	}
	units, err := c.toUTF16(c.cp, b)
	if err != nil {
		return nil, err
	}
	return c.fromUTF16(UTF8, units)
}

// UTF8ToLegacy encodes UTF-8 text into the legacy code page. Characters the
// code page cannot represent are substituted by the converter.
func (c *Codec) UTF8ToLegacy(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return []byte{}, nil
	}
	if c.Passthrough() {
		return bytes.Clone(b), nil
	}
	units, err := c.toUTF16(UTF8, b)
	if err != nil {
		return nil, err
	}
	return c.fromUTF16(c.cp, units)
}

// UTF8ToUTF16 converts UTF-8 text into UTF-16 code units.
func (c *Codec) UTF8ToUTF16(b []byte) ([]uint16, error) {
	if len(b) == 0 {
		return []uint16{}, nil
	}
	return c.toUTF16(UTF8, b)
}

// UTF16ToUTF8 converts UTF-16 code units into UTF-8 text.
func (c *Codec) UTF16ToUTF8(u []uint16) ([]byte, error) {
	if len(u) == 0 {
		return []byte{}, nil
	}
	return c.fromUTF16(UTF8, u)
}

// UTF8ToEscapedASCII renders UTF-8 text for sinks that mangle multi-byte
// text. Each UTF-16 code unit above 0xff becomes a \uXXXX escape with four
// lowercase hex digits; every other unit is written as a single byte.
// Characters outside the BMP are escaped as two surrogate units.
func (c *Codec) UTF8ToEscapedASCII(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	units, err := c.toUTF16(UTF8, b)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(len(units))
	for _, u := range units {
		if u <= 0xff {
			sb.WriteByte(byte(u))
			continue
		}
		sb.WriteString(`\u`)
		sb.WriteByte(hexDigits[u>>12])
		sb.WriteByte(hexDigits[(u>>8)&0xf])
		sb.WriteByte(hexDigits[(u>>4)&0xf])
		sb.WriteByte(hexDigits[u&0xf])
	}
	return sb.String(), nil
}

func (c *Codec) toUTF16(cp CodePage, src []byte) ([]uint16, error) {
	n := c.conv.ToUTF16(cp, src, nil)
	if n <= 0 {
		return nil, fmt.Errorf("%w: measuring %s to UTF-16", ErrConversion, cp)
	}
	dst := make([]uint16, n)
	n = c.conv.ToUTF16(cp, src, dst)
	if n <= 0 {
		return nil, fmt.Errorf("%w: %s to UTF-16", ErrConversion, cp)
	}
	return dst[:n], nil
}

func (c *Codec) fromUTF16(cp CodePage, src []uint16) ([]byte, error) {
	n := c.conv.FromUTF16(cp, src, nil)
	if n <= 0 {
		return nil, fmt.Errorf("%w: measuring UTF-16 to %s", ErrConversion, cp)
	}
	dst := make([]byte, n)
	n = c.conv.FromUTF16(cp, src, dst)
	if n <= 0 {
		return nil, fmt.Errorf("%w: UTF-16 to %s", ErrConversion, cp)
	}
	return dst[:n], nil
}

// LegacyToUTF8 converts with the Default codec.
func LegacyToUTF8(b []byte) ([]byte, error) { return Default().LegacyToUTF8(b) }

// UTF8ToLegacy converts with the Default codec.
func UTF8ToLegacy(b []byte) ([]byte, error) { return Default().UTF8ToLegacy(b) }

// UTF8ToUTF16 converts with the Default codec.
func UTF8ToUTF16(b []byte) ([]uint16, error) { return Default().UTF8ToUTF16(b) }

// UTF16ToUTF8 converts with the Default codec.
func UTF16ToUTF8(u []uint16) ([]byte, error) { return Default().UTF16ToUTF8(u) }

// UTF8ToEscapedASCII escapes with the Default codec.
func UTF8ToEscapedASCII(b []byte) (string, error) { return Default().UTF8ToEscapedASCII(b) }

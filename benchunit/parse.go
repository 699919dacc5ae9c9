// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit classifies measurement units and formats numbers
// in those units, for use in chart axes and tables.
package benchunit

import (
	"fmt"
	"strings"
	"unicode"
)

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Decimal indicates values of a given unit should be scaled
	// by powers of 1000 using SI prefixes, such as "k" and "M".
	Decimal Class = iota
	// Binary indicates values of a given unit should be scaled by
	// powers of 1024 using IEC prefixes, such as "Ki" and "Mi".
	Binary
	// Plain indicates the unit already carries a scale, as in
	// "MB/Sec" or "ms/op", so values are printed without a prefix.
	Plain
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	case Plain:
		return "Plain"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ClassOf returns the Class of unit. If a numerator token is a
// prefixed measure such as "MB" or "ms", this is Plain. Otherwise, if
// the numerator contains bytes, it is Binary. Everything else,
// including the empty unit, is Decimal.
//
// Tokens are compared case-insensitively for the base unit, so
// "MB/Sec" and "MB/sec" classify the same.
func ClassOf(unit string) Class {
	cls := Decimal
	p := newParser(unit)
	for p.next() {
		if p.denom {
			continue
		}
		if isPrefixed(p.tok) {
			return Plain
		}
		if p.tok == "B" || strings.EqualFold(p.tok, "bytes") {
			cls = Binary
		}
	}
	return cls
}

var (
	scalePrefixes = []string{"Ki", "Mi", "Gi", "Ti", "k", "K", "M", "G", "T", "m", "µ", "u", "n"}
	baseUnits     = []string{"B", "bytes", "s", "sec"}
)

func isPrefixed(tok string) bool {
	for _, pfx := range scalePrefixes {
		base, ok := strings.CutPrefix(tok, pfx)
		if !ok || base == "" {
			continue
		}
		for _, b := range baseUnits {
			if base == b || (len(b) > 1 && strings.EqualFold(base, b)) {
				return true
			}
		}
	}
	return false
}

type parser struct {
	rest string // unparsed unit

	tok   string
	denom bool // current token is in denominator
}

func newParser(unit string) *parser {
	return &parser{rest: unit}
}

func (p *parser) next() bool {
	// Consume separators.
	i := strings.IndexFunc(p.rest, func(r rune) bool {
		switch {
		case r == '*':
			p.denom = false
		case r == '/':
			p.denom = true
		case r == '-' || unicode.IsSpace(r):
		default:
			return true
		}
		return false
	})
	if i < 0 {
		p.rest = ""
		return false
	}
	p.rest = p.rest[i:]

	// Consume until separator.
	end := strings.IndexFunc(p.rest, func(r rune) bool {
		return r == '*' || r == '/' || r == '-' || unicode.IsSpace(r)
	})
	if end < 0 {
		end = len(p.rest)
	}
	p.tok, p.rest = p.rest[:end], p.rest[end:]
	return true
}

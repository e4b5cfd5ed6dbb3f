// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Board entity and the result of a parse.
//
// A Board is created exactly once, when its command parses successfully, and
// is never mutated afterwards. Nullable numbers are pointers: a board without
// a position has nil X, Y and Z, and property lookups treat nil as 0.
package model

// FromTo records the two endpoints of an angled placement.
type FromTo struct {
	X1 float64 `json:"x1" yaml:"x1"`
	Y1 float64 `json:"y1" yaml:"y1"`
	X2 float64 `json:"x2" yaml:"x2"`
	Y2 float64 `json:"y2" yaml:"y2"`
}

// Cuts holds per-edge trim values. Left and Right are the resulting edge
// heights, Top and Bottom the resulting edge widths. At least one is set.
type Cuts struct {
	Left   *float64 `json:"left" yaml:"left"`
	Right  *float64 `json:"right" yaml:"right"`
	Top    *float64 `json:"top" yaml:"top"`
	Bottom *float64 `json:"bottom" yaml:"bottom"`
}

// Empty reports whether no side carries a value.
func (c *Cuts) Empty() bool {
	return c == nil || (c.Left == nil && c.Right == nil && c.Top == nil && c.Bottom == nil)
}

// Board is one fully resolved panel.
type Board struct {
	ID   string  `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	W    float64 `json:"w" yaml:"w"`
	H    float64 `json:"h" yaml:"h"`
	D    float64 `json:"d" yaml:"d"`

	X      *float64 `json:"x" yaml:"x"`
	Y      *float64 `json:"y" yaml:"y"`
	Z      *float64 `json:"z" yaml:"z"`
	HasPos bool     `json:"hasPos" yaml:"hasPos"`

	// Angle is in degrees and is non-zero only for from/to placements.
	Angle  float64 `json:"angle" yaml:"angle"`
	FromTo *FromTo `json:"fromTo" yaml:"fromTo"`

	Cuts *Cuts `json:"cuts" yaml:"cuts"`

	// View is an ordered, duplicate-free string over "fst"; "" means unset.
	View    string `json:"view,omitempty" yaml:"view,omitempty"`
	Color   string `json:"color" yaml:"color"`
	Visible bool   `json:"visible" yaml:"visible"`
}

// Pos returns the board position with nil coordinates read as 0.
func (b *Board) Pos() (x, y, z float64) {
	return deref(b.X), deref(b.Y), deref(b.Z)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Float returns a pointer to v. It keeps literal construction of nullable
// fields short.
func Float(v float64) *float64 {
	return &v
}

// ParseResult is the complete outcome of one parse session.
type ParseResult struct {
	Boards   []*Board `json:"boards" yaml:"boards"`
	Errors   []string `json:"errors" yaml:"errors"`
	VarCount int      `json:"varCount" yaml:"varCount"`
}

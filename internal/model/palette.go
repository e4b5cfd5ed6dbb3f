// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the automatic color palette and the face vocabulary.
package model

// AutoColors is cycled through, by creation index, for boards that do not
// name a color.
var AutoColors = [...]string{
	"#c8a165",
	"#8b5a2b",
	"#d9c3a0",
	"#a0522d",
	"#6b8e23",
	"#4682b4",
	"#b5651d",
	"#deb887",
	"#708090",
	"#cd853f",
	"#9c7c5a",
	"#5f9ea0",
}

// AutoColor returns the palette entry for the n-th created board.
func AutoColor(n int) string {
	return AutoColors[n%len(AutoColors)]
}

// Face letters used by the view option.
const (
	FaceFront = 'f'
	FaceSide  = 's'
	FaceTop   = 't'
)

// FaceOrder is the canonical face order, also used to break area ties.
const FaceOrder = "fst"

// FaceLabels are the fixed captions shown next to each face in list views.
var FaceLabels = map[rune]string{
	FaceFront: "Pohled zepředu",
	FaceSide:  "Pohled z boku",
	FaceTop:   "Pohled shora",
}

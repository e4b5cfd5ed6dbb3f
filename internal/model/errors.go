// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the error categories of the board DSL.
//
// Every failure is local to one source line. The packages that detect a
// failure wrap one of these sentinels with detail (errors.Wrapf), and the
// parser turns the result into a single line-numbered message. Callers that
// need the category use errors.Is.
package model

import "github.com/pkg/errors"

var (
	ErrSyntax            = errors.New("syntax error")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrUnknownVariable   = errors.New("unknown variable")
	ErrInvalidVariable   = errors.New("invalid variable definition")
	ErrUnknownID         = errors.New("unknown board id")
	ErrUnknownProperty   = errors.New("unknown property")
	ErrDimensionCount    = errors.New("expected 3 dimensions")
	ErrCoordCount        = errors.New("wrong number of coordinates")
	ErrInvalidExpression = errors.New("invalid expression")
	ErrDuplicateID       = errors.New("duplicate id")
	ErrInvalidView       = errors.New("invalid view")
	ErrInvalidCut        = errors.New("invalid cut")

	// ErrWidthMismatch is a warning: the board is still created.
	ErrWidthMismatch = errors.New("width mismatch")
)

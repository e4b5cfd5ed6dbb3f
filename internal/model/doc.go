// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of the board DSL's output: the
// fully resolved boards, the per-parse result and the shared error taxonomy.
//
// # Core Concepts
//
//   - Board: one rectangular panel with dimensions, an optional position
//     (fixed corner or from/to endpoints), optional trapezoidal cuts, an
//     optional face selection and a display color.
//
//   - ParseResult: everything a single parse produced. Boards are listed in
//     creation order next to one line-numbered message per failing line.
//     Both lists are always returned together; one bad line never hides the
//     boards that did parse.
//
//   - Errors: sentinel categories (ErrUnknownVariable, ErrDuplicateID, ...)
//     wrapped with detail by the packages that detect them, so callers can
//     test the category with errors.Is while users read the detail.
//
// Why a separate model package?
//
// The parser, the geometry helpers and the renderers all speak about the
// same Board. Keeping the type in a leaf package lets the geometry code be
// used without pulling in the parser, and lets renderers consume results
// without knowing how they were produced.
package model

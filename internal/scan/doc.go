// Package scan splits board command text into sections without a full
// grammar. It tokenizes the text, tracks `{}`/`()` nesting and answers two
// questions: where is the first top-level occurrence of a keyword, and what
// are the top-level comma- or dimension-separated parts of a fragment.
//
// Keywords nested inside property references or parenthesised expressions
// are never reported, so `at {a.top},0,0 cut top 10` finds `cut` and not the
// `top` inside the braces.
package scan

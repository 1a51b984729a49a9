// Package table provides a small tabular data model for embedding tables in
// email bodies and attachments. A Table has ordered columns, rows of
// column-to-value mappings, and an optional prefix of grouping columns.
// Consecutive rows that share the same values in the grouping columns are
// rendered as one visual group: merged cells in HTML and blanked repeats in
// monospaced text.
//
// The Spans object computed by Compute answers, for every cell, whether the
// cell starts a new visual group and how many consecutive rows that group
// covers. Both renderers consume the same Spans, so the two renditions of a
// table always agree on group boundaries.
package table

// Package dom provides a small read-only view over a parsed markup
// document. Extraction code depends on the Node interface and the
// query helpers only, so the parser behind it can be swapped without
// touching the extraction rules.
package dom

// Package html provides a Normaliser implementation for HTML documents.
// It extracts readable prose from HTML, dropping scripts, styles and
// markup, decoding entities, and closing headings and list items as
// sentences.
package html

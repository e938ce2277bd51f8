// Package normalisers provides the Normaliser registry and the helpers
// shared by the format packages below it. Each format package knows how
// to turn one family of MIME types into plain prose for analysis.
//
// Normalisers are registered with the Registry at startup.
package normalisers

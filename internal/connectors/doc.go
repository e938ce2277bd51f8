// Package connectors holds the document sources distil can read from.
// The filesystem connector opens local files and watches directories.
package connectors

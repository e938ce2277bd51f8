// Package filesystem reads documents from a local directory and watches it
// for changes with fsnotify. Hidden files and directories (dot-prefixed
// below the root) are ignored.
package filesystem

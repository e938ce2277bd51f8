// Package services implements the driving port interfaces.
// Services validate input, call the analysis engine and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO or external dependencies.
package services

// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - ConfigStore: Application configuration
//   - DocumentSource: Reads and watches documents (filesystem)
//   - Normaliser: Turns raw bytes of one MIME type into plain text
//   - NormaliserRegistry: Selects the appropriate normaliser
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven

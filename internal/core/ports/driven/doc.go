// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - PageFetcher: downloads the reference page (colly connector)
//   - IndexParser: turns the page into a Registry (goquery normaliser)
//   - PostProcessor: checks or rewrites a parsed Registry before saving
//   - RegistryWriter: persists a built Registry (JSON file, SQLite, memory)
//   - RegistryReader: loads a Registry for querying
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven

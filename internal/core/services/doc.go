// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven ports
// (adapters).
//
// Services depend only on domain types and port interfaces. The one
// third-party import is google/uuid for build identifiers.
package services

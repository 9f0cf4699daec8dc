// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate calls to the
// simplex engine and to driven ports (adapters).
package services

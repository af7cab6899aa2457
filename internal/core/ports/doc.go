// Package ports defines the contracts between the application core and its adapters:
// the order record store (repository and unit of work) and the broadcast hub
// (event publisher and subscriber).
package ports

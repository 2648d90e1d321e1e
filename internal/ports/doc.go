// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers
// and CLI commands. Client ports are implemented by outbound adapters (store,
// publisher) and called by the application layer.
package ports

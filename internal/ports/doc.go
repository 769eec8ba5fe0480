// Package ports holds the interfaces the layers meet at. The application
// layer implements the service ports handlers call; storage adapters
// implement the store ports the application layer calls.
package ports

// Package store defines the persistence interfaces and sentinel errors used
// throughout the application. Concrete implementations live under
// internal/platform; handlers and services depend only on the interfaces
// defined here.
package store

package service

// Service defines the lifecycle interface for infrastructure subsystems
// managing long-lived resources: the audio backend, the terminal screen.
//
// Lifecycle:
//  1. Construction (via factory)
//  2. Init() - acquire the underlying resource
//  3. Start() - begin operation
//  4. [runtime operation]
//  5. Stop() - halt and release; must be idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Init acquires the underlying resource
	Init() error

	// Start begins service operation
	Start() error

	// Stop halts operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

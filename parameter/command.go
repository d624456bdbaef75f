package parameter

// Command Queue
const (
	// CommandQueueSize must be a power of 2 for mask indexing
	CommandQueueSize = 64

	// CommandBufferMask for ring buffer index wrapping
	CommandBufferMask = CommandQueueSize - 1
)

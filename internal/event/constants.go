package event

// EventSchemaVersion stamps every envelope. Bump it when Event changes
// shape so serialized consumers can tell generations apart.
const EventSchemaVersion = "1.0"

// retryQueueCapacity bounds how many failed events can wait for
// redelivery; overflow goes straight to the dead-letter log.
const retryQueueCapacity = 1000

// Log messages for the resilient publisher
const (
	LogMsgDeliveryFailed    = "Event delivery failed, queuing for retry"
	LogMsgRetryQueueFull    = "Retry queue full, dead-lettering event"
	LogMsgDeadLetterFailed  = "Failed to append dead-letter entry"
	LogMsgRetriesExhausted  = "Retries exhausted, dead-lettering event"
	LogMsgRetryBackoff      = "Event retry failed, backing off"
	LogMsgRetryDelivered    = "Event delivered after retry"
	LogMsgRetryQueueFlushed = "Flushed retry queue during shutdown"
	LogMsgWorkerStopTimeout = "Timed out waiting for event retry worker"
	LogMsgEventDeadLettered = "Event dead-lettered"
)

// Formats for errors surfaced by MemoryBus.Publish
const (
	handlerErrsFormat  = "event %s: %d handler error(s): %v"
	handlerPanicFormat = "event %s: handler panic: %v"
)

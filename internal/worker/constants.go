package worker

// Log messages
const (
	LogMsgPoolStarted = "Worker pool started"
	LogMsgPoolStopped = "Worker pool stopped"
	LogMsgJobFailed   = "Background job failed"
	LogMsgJobPanicked = "Background job panicked"
)

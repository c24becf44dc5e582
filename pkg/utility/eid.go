package utility

import (
	"sync"

	"github.com/google/uuid"
)

// ExecutionID identifies one decoder run; every log line of a run carries it.
type ExecutionID = uuid.UUID

var (
	executionID     ExecutionID
	executionIDOnce sync.Once
)

func GetExecutionID() ExecutionID {
	executionIDOnce.Do(func() {
		executionID = uuid.Must(uuid.NewV7())
	})
	return executionID
}

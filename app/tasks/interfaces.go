package tasks

// TaskSchedulerInterface defines the interface for task scheduling operations.
// Used by the main application and the API trigger surface to run archive
// imports in the background.
// Example usage:
//
//	scheduler := NewScheduler(httpClient, assembler, detector, materializer)
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(NewImportDataTask(...))
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}

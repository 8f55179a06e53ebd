package interfaces

// IGenerationDispatcher starts a report generation run in the background.
// Dispatch returns immediately; the run outlives the caller's request.
type IGenerationDispatcher interface {
	Dispatch(sessionID string)
}

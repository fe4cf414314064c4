package handlers

const (
	// Error messages shared by the JSON handlers
	msgInvalidBody      = "Invalid request body"
	msgInvalidSubjectID = "Invalid subject id"
	msgNoSession        = "Session not resolved"
)

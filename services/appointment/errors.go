package appointment

// ValidationError carries the user-facing message for a rejected intake
// payload. The form shows Message verbatim, so it stays in Spanish.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

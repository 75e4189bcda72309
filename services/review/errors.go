package review

// ValidationError carries the user-facing message for a rejected review.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

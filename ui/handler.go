package ui

// SubmitEvent is a form submission. PreventDefault suppresses whatever the
// front end would do on its own when the form is submitted.
type SubmitEvent interface {
	PreventDefault()
}

// Form exposes field values by element id and the form's submit control.
type Form interface {
	Value(id string) string
	SetSubmitting(submitting bool)
}

// Page receives the visible effects of a submission.
type Page interface {
	SetText(id, text string)
	Navigate(path string)
}

// Storage is the durable key/value store the token is written to.
type Storage interface {
	SetItem(key, value string) error
}

type noopEvent struct{}

func (noopEvent) PreventDefault() {}

// NoDefault is a SubmitEvent for front ends without a default submit action.
var NoDefault SubmitEvent = noopEvent{}

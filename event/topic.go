package event

type Topic string

const (
	MouseEntered Topic = "event-mouse-entered"
	MouseExited  Topic = "event-mouse-exited"
)

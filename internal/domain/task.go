package domain

// Task is a single todo item as the rest of the application sees it.
type Task struct {
	ID   int64
	Text string
}

// NewTask creates a new Task with the given text.
func NewTask(text string) Task {
	return Task{
		Text: text,
	}
}

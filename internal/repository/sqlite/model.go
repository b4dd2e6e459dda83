package sqlite

// Task is one row of the todos table
type Task struct {
	ID   int64
	Text string
}

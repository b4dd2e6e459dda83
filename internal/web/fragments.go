package web

import (
	"bytes"
	"html/template"

	"todo-list/internal/domain"
)

const htmlContentType = "text/html; charset=utf-8"

type messageKind string

const (
	messageSuccess messageKind = "text-green-600"
	messageError   messageKind = "text-red-600"
)

const (
	messageTaskEmpty   = "Task cannot be empty!"
	messageTaskAdded   = "Task added!"
	messageTaskUpdated = "Task updated!"
	messageTasksGone   = "Deleted %d task(s)!"
	messageEmptyList   = "No tasks yet"
)

var fragments = template.Must(template.New("fragments").Parse(`
{{- define "message" -}}
<div class="{{.Class}}">{{.Text}}</div>
{{- end -}}

{{- define "empty" -}}
<li class="p-2 text-gray-500">{{.}}</li>
{{- end -}}

{{- define "list" -}}
{{- range . -}}
<li class="p-2 border-b flex justify-between items-center">
<div><input type="checkbox" name="ids" value="{{.ID}}" class="mr-2">{{.Text}}</div>
<div>
<button onclick="editTodo({{.ID}})" class="text-blue-500 hover:text-blue-700 mr-2">Edit</button>
<button onclick="deleteTodo({{.ID}})" class="text-red-500 hover:text-red-700">Delete</button>
</div>
</li>
{{- end -}}
{{- end -}}
`))

type messageData struct {
	Class messageKind
	Text  string
}

func messageFragment(kind messageKind, text string) ([]byte, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, "message", messageData{Class: kind, Text: text}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// taskListFragment renders one list item per task, or the empty-state item when there are none.
func taskListFragment(tasks []*domain.Task) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if len(tasks) == 0 {
		err = fragments.ExecuteTemplate(&buf, "empty", messageEmptyList)
	} else {
		err = fragments.ExecuteTemplate(&buf, "list", tasks)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

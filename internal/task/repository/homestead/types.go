package homestead

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx answer from the homestead API.
type APIError struct {
	StatusCode int
	Method     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("homestead API %s error %d: %s", e.Method, e.StatusCode, e.Body)
}

// ID accepts both JSON strings and numbers; the backend is not consistent.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// TaskDTO is the wire form of a task definition.
type TaskDTO struct {
	ID           ID      `json:"id"`
	ProjectID    ID      `json:"project_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	TaskDateTime string  `json:"task_datetime"`
	IsAllDay     bool    `json:"is_all_day"`
	Recurrence   *string `json:"recurrence"`
}

// ListTasksResponse is the body of GET /projects/{projectId}/tasks.
type ListTasksResponse struct {
	Tasks []TaskDTO `json:"tasks"`
}

// CreateTaskRequest is the body for POST /projects/{projectId}/tasks.
// Recurrence is null for one-off tasks.
type CreateTaskRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	TaskDateTime string  `json:"task_datetime"`
	IsAllDay     bool    `json:"is_all_day"`
	Recurrence   *string `json:"recurrence"`
}

// UpdateTaskRequest is the partial body for PUT used by rescheduling; it
// carries only the new anchor.
type UpdateTaskRequest struct {
	TaskDateTime string `json:"task_datetime"`
}

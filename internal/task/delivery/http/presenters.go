package http

import (
	"homestead-calendar/internal/model"
	"homestead-calendar/internal/task"
	"homestead-calendar/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	ProjectID   string `json:"-"` // populated from URI param
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	AllDay      bool   `json:"is_all_day"`
	Recurrence  string `json:"recurrence"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Time:        r.Time,
		AllDay:      r.AllDay,
		Recurrence:  r.Recurrence,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string            `json:"id"`
	ProjectID   string            `json:"project_id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Anchor      response.DateTime `json:"task_datetime"`
	AllDay      bool              `json:"is_all_day"`
	Recurrence  string            `json:"recurrence"`
}

func newTaskResp(def model.TaskDefinition) taskResp {
	return taskResp{
		ID:          def.ID,
		ProjectID:   def.ProjectID,
		Title:       def.Title,
		Description: def.Description,
		Anchor:      response.DateTime(def.Anchor),
		AllDay:      def.AllDay,
		Recurrence:  def.Recurrence.String(),
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

package http

import (
	"fmt"
	"strings"

	"homestead-calendar/internal/calendar"
	"homestead-calendar/internal/model"
	"homestead-calendar/internal/reschedule"
	"homestead-calendar/pkg/response"
)

// --- Request DTOs ---

type getReq struct {
	View       string   `form:"view"`
	Date       string   `form:"date"`
	ProjectIDs []string `form:"project_id"`
}

func (r getReq) validate() error {
	if _, err := model.ParseView(r.View); err != nil {
		return err
	}
	return nil
}

func (r getReq) toInput(ref model.Date) calendar.NavigateInput {
	var ids []string
	for _, id := range r.ProjectIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return calendar.NavigateInput{
		View:      model.View(strings.ToLower(strings.TrimSpace(r.View))),
		Reference: ref,
		Scope:     model.ProjectScope{ProjectIDs: ids},
	}
}

// ---

type rescheduleReq struct {
	TaskID     string `json:"task_id"     binding:"required"`
	TargetDate string `json:"target_date" binding:"required"`
	TargetHour *int   `json:"target_hour" binding:"omitempty,min=0,max=23"`
}

func (r rescheduleReq) validate() error {
	if _, err := model.ParseDate(r.TargetDate); err != nil {
		return err
	}
	return nil
}

func (r rescheduleReq) toTarget() reschedule.Target {
	d, _ := model.ParseDate(r.TargetDate)
	return reschedule.Target{Date: d, Hour: r.TargetHour}
}

// --- Response DTOs ---

type occurrenceResp struct {
	TaskID      string            `json:"task_id"`
	ProjectID   string            `json:"project_id,omitempty"`
	ProjectName string            `json:"project_name,omitempty"`
	Title       string            `json:"title"`
	AllDay      bool              `json:"all_day"`
	Time        string            `json:"time,omitempty"`
	Start       response.DateTime `json:"start"`
	Recurring   bool              `json:"recurring"`
	ReadOnly    bool              `json:"read_only"`
}

type dayResp struct {
	Date        string           `json:"date"`
	Occurrences []occurrenceResp `json:"occurrences"`
}

type windowResp struct {
	Start response.DateTime `json:"start"`
	End   response.DateTime `json:"end"`
}

type calendarResp struct {
	View      string            `json:"view"`
	Reference string            `json:"reference"`
	Window    windowResp        `json:"window"`
	Projects  []string          `json:"projects"`
	Days      []dayResp         `json:"days"`
	Stale     bool              `json:"stale"`
	LoadedAt  response.DateTime `json:"loaded_at"`
}

func (h *handler) newCalendarResp(snap calendar.Snapshot) calendarResp {
	names := make(map[string]string)
	for _, p := range h.uc.Projects() {
		names[p.ID] = p.Name
	}

	days := make([]dayResp, 0, len(snap.Window.Days()))
	for _, d := range snap.Window.Days() {
		occs := snap.Buckets[d]
		items := make([]occurrenceResp, 0, len(occs))
		for _, occ := range occs {
			items = append(items, newOccurrenceResp(occ, names[occ.ProjectID]))
		}
		days = append(days, dayResp{Date: d.String(), Occurrences: items})
	}

	projects := snap.Scope.ProjectIDs
	if projects == nil {
		projects = []string{}
	}
	return calendarResp{
		View:      string(snap.View),
		Reference: snap.Reference.String(),
		Window:    windowResp{Start: response.DateTime(snap.Window.Start), End: response.DateTime(snap.Window.End)},
		Projects:  projects,
		Days:      days,
		Stale:     snap.Stale,
		LoadedAt:  response.DateTime(snap.LoadedAt),
	}
}

func newOccurrenceResp(occ model.Occurrence, projectName string) occurrenceResp {
	resp := occurrenceResp{
		TaskID:      occ.TaskID,
		ProjectID:   occ.ProjectID,
		ProjectName: projectName,
		Title:       occ.Title,
		AllDay:      occ.AllDay,
		Start:       response.DateTime(occ.Start),
		Recurring:   occ.Recurring,
		ReadOnly:    occ.ReadOnly,
	}
	if !occ.AllDay {
		resp.Time = fmt.Sprintf("%02d:%02d", int(occ.TimeOfDay.Hours()), int(occ.TimeOfDay.Minutes())%60)
	}
	return resp
}

type rescheduleResp struct {
	TaskID         string             `json:"task_id"`
	State          string             `json:"state"`
	PreviousAnchor response.DateTime  `json:"previous_anchor"`
	Anchor         *response.DateTime `json:"anchor,omitempty"`
	Calendar       calendarResp       `json:"calendar"`
}

func (h *handler) newRescheduleResp(res reschedule.Result) rescheduleResp {
	resp := rescheduleResp{
		TaskID:         res.TaskID,
		State:          string(res.State),
		PreviousAnchor: response.DateTime(res.PreviousAnchor),
		Calendar:       h.newCalendarResp(h.uc.Current()),
	}
	if !res.Anchor.IsZero() {
		a := response.DateTime(res.Anchor)
		resp.Anchor = &a
	}
	return resp
}

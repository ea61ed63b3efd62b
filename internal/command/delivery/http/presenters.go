package http

import (
	"errors"
	"strings"
	"time"

	"homestead-voice-assistant/internal/command"
	"homestead-voice-assistant/internal/model"
)

// --- Request DTOs ---

type processReq struct {
	Transcript string `json:"transcript" binding:"required"`
	ProjectID  string `json:"project_id"`
	VoiceID    string `json:"voice_id"`
}

func (r processReq) validate() error {
	if strings.TrimSpace(r.Transcript) == "" {
		return errors.New("transcript must not be blank")
	}
	return nil
}

func (r processReq) toInput() command.ProcessInput {
	return command.ProcessInput{
		Transcript: r.Transcript,
		ProjectID:  r.ProjectID,
		VoiceID:    r.VoiceID,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	IsProjectTask bool       `json:"is_project_task"`
	ProjectID     string     `json:"project_id,omitempty"`
	CalendarLink  string     `json:"calendar_link,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status,
		Priority:      string(t.Priority),
		DueDate:       t.DueDate,
		IsProjectTask: t.IsProjectTask,
		ProjectID:     t.ProjectID,
		CalendarLink:  t.CalendarLink,
	}
}

type inventoryItemResp struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ItemType         string   `json:"item_type"`
	QuantityNeeded   *int     `json:"quantity_needed,omitempty"`
	QuantityOwned    *int     `json:"quantity_owned,omitempty"`
	QuantityBorrowed *int     `json:"quantity_borrowed,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Fundraiser       bool     `json:"fundraiser"`
	ProjectID        string   `json:"project_id,omitempty"`
}

func newInventoryItemResp(it model.InventoryItem) inventoryItemResp {
	return inventoryItemResp{
		ID:               it.ID,
		Title:            it.Title,
		ItemType:         string(it.ItemType),
		QuantityNeeded:   it.QuantityNeeded,
		QuantityOwned:    it.QuantityOwned,
		QuantityBorrowed: it.QuantityBorrowed,
		Tags:             it.Tags,
		Fundraiser:       it.Fundraiser,
		ProjectID:        it.ProjectID,
	}
}

type projectResp struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Location       string `json:"location,omitempty"`
	PropertyStatus string `json:"property_status"`
}

func newProjectResp(p model.Project) projectResp {
	return projectResp{
		ID:             p.ID,
		Title:          p.Title,
		Location:       p.Location,
		PropertyStatus: p.PropertyStatus,
	}
}

type businessPlanResp struct {
	ProjectID string `json:"project_id"`
	Query     string `json:"query"`
}

type processResp struct {
	Intent       string             `json:"intent"`
	Task         *taskResp          `json:"task,omitempty"`
	Item         *inventoryItemResp `json:"item,omitempty"`
	Project      *projectResp       `json:"project,omitempty"`
	BusinessPlan *businessPlanResp  `json:"business_plan,omitempty"`
	Confirmation string             `json:"confirmation"`
	AudioURL     string             `json:"audio_url,omitempty"`
}

func (h *handler) newProcessResp(out command.ProcessOutput) processResp {
	resp := processResp{
		Intent:       string(out.Command.Intent),
		Confirmation: out.Confirmation,
		AudioURL:     out.AudioURL,
	}
	if out.Task != nil {
		t := newTaskResp(*out.Task)
		resp.Task = &t
	}
	if out.Item != nil {
		it := newInventoryItemResp(*out.Item)
		resp.Item = &it
	}
	if out.Project != nil {
		p := newProjectResp(*out.Project)
		resp.Project = &p
	}
	if out.BusinessPlan != nil {
		resp.BusinessPlan = &businessPlanResp{
			ProjectID: out.BusinessPlan.ProjectID,
			Query:     out.BusinessPlan.Query,
		}
	}
	return resp
}

type detailProjectResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newDetailProjectResp(p model.Project) detailProjectResp {
	return detailProjectResp{Project: newProjectResp(p)}
}

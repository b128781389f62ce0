package performance

import (
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/validator"
)

type CreateObjectiveRequest struct {
	EmployeeID      string `json:"employee_id" validate:"required"`
	PeriodLabel     string `json:"period_label" validate:"max=100"`
	ObjectiveName   string `json:"objective_name" validate:"required,max=200"`
	KeyResultName   string `json:"key_result_name" validate:"required,max=200"`
	ProgressPercent int    `json:"progress_percent" validate:"gte=0,lte=100"`
}

func (r *CreateObjectiveRequest) Validate() error {
	return validator.Struct(r)
}

type UpdateObjectiveRequest struct {
	ProgressPercent int  `json:"progress_percent" validate:"gte=0,lte=100"`
	IsActive        bool `json:"is_active"`
}

func (r *UpdateObjectiveRequest) Validate() error {
	return validator.Struct(r)
}

type CreateSummaryRequest struct {
	EmployeeID      string `json:"employee_id" validate:"required"`
	WeekStart       string `json:"week_start" validate:"required,datetime=2006-01-02"`
	WeekEnd         string `json:"week_end" validate:"required,datetime=2006-01-02"`
	ProgressPercent int    `json:"progress_percent" validate:"gte=0,lte=100"`
}

func (r *CreateSummaryRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	start, _ := time.Parse("2006-01-02", r.WeekStart)
	end, _ := time.Parse("2006-01-02", r.WeekEnd)
	if end.Before(start) {
		return validator.ValidationErrors{{Field: "week_end", Message: "week_end must not be before week_start"}}
	}
	return nil
}

type CreateActivityRequest struct {
	Description string `json:"description" validate:"required,max=255"`
}

func (r *CreateActivityRequest) Validate() error {
	return validator.Struct(r)
}

type SetActivityDoneRequest struct {
	IsDone bool `json:"is_done"`
}

type ObjectiveResponse struct {
	ID              string `json:"id"`
	PeriodLabel     string `json:"period_label"`
	ObjectiveName   string `json:"objective_name"`
	KeyResultName   string `json:"key_result_name"`
	ProgressPercent int    `json:"progress_percent"`
	IsActive        bool   `json:"is_active"`
}

func NewObjectiveResponse(o Objective) ObjectiveResponse {
	return ObjectiveResponse{
		ID:              o.ID,
		PeriodLabel:     o.PeriodLabel,
		ObjectiveName:   o.ObjectiveName,
		KeyResultName:   o.KeyResultName,
		ProgressPercent: o.ProgressPercent,
		IsActive:        o.IsActive,
	}
}

type SummaryResponse struct {
	ID              string `json:"id"`
	WeekStart       string `json:"week_start"`
	WeekEnd         string `json:"week_end"`
	ProgressPercent int    `json:"progress_percent"`
	ActivitiesDone  int    `json:"activities_done"`
	TotalActivities int    `json:"total_activities"`
}

func NewSummaryResponse(s WeeklySummary) SummaryResponse {
	return SummaryResponse{
		ID:              s.ID,
		WeekStart:       s.WeekStart.Format("2006-01-02"),
		WeekEnd:         s.WeekEnd.Format("2006-01-02"),
		ProgressPercent: s.ProgressPercent,
		ActivitiesDone:  s.ActivitiesDone,
		TotalActivities: s.TotalActivities,
	}
}

type ActivityResponse struct {
	ID          string  `json:"id"`
	SummaryID   string  `json:"summary_id"`
	Description string  `json:"description"`
	IsDone      bool    `json:"is_done"`
	WeekEnd     *string `json:"week_end,omitempty"`
}

func NewActivityResponse(a WeeklyActivity) ActivityResponse {
	resp := ActivityResponse{
		ID:          a.ID,
		SummaryID:   a.SummaryID,
		Description: a.Description,
		IsDone:      a.IsDone,
	}
	if a.WeekEnd != nil {
		s := a.WeekEnd.Format("2006-01-02")
		resp.WeekEnd = &s
	}
	return resp
}

type OverviewResponse struct {
	Objectives    []ObjectiveResponse `json:"objectives"`
	WeeklySummary *SummaryResponse    `json:"weekly_summary,omitempty"`
	Activities    []ActivityResponse  `json:"activities"`
}

// file: internals/features/academic/submissions/dto/submission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	subModel "kampusku_backend/internals/features/academic/submissions/model"
	"kampusku_backend/internals/features/academic/submissions/service"
)

//
// =========================================================
// REQUEST DTO
// =========================================================
//

// student_id TIDAK ada di body — dipaksa dari token oleh controller.
type SubmitRequest struct {
	SubmissionAssignmentID uuid.UUID `json:"submission_assignment_id" validate:"required,uuid4"`
	SubmissionFileURL      string    `json:"submission_file_url" validate:"required,url"`
	SubmissionText         *string   `json:"submission_text,omitempty"`
}

type ResubmitRequest struct {
	SubmissionFileURL string  `json:"submission_file_url" validate:"required,url"`
	SubmissionText    *string `json:"submission_text,omitempty"`
}

// Skor wajib dikirim eksplisit (pointer): payload tanpa skor TIDAK boleh
// diam-diam dinilai 0. Rentang nilai dijaga service (ErrInvalidGrade),
// bukan tag validator, supaya error_code-nya stabil.
type GradeRequest struct {
	SubmissionScore    *float64       `json:"submission_score" validate:"required"`
	SubmissionFeedback *string        `json:"submission_feedback,omitempty"`
	SubmissionScores   map[string]any `json:"submission_scores,omitempty"` // rincian rubrik opsional
}

type RejectRequest struct {
	SubmissionFeedback string `json:"submission_feedback" validate:"required"`
}

//
// =========================================================
// QUERY DTO
// =========================================================
//

type ListSubmissionsQuery struct {
	AssignmentID *uuid.UUID                  `query:"assignment_id"`
	StudentID    *uuid.UUID                  `query:"student_id"`
	Status       *subModel.SubmissionStatus  `query:"status" validate:"omitempty,oneof=submitted resubmitted graded rejected"`

	SubmittedFrom *time.Time `query:"submitted_from"`
	SubmittedTo   *time.Time `query:"submitted_to"`

	Sort string `query:"sort" validate:"omitempty,oneof=created_at desc_created_at submitted_at desc_submitted_at score desc_score"`
}

//
// =========================================================
// RESPONSE DTO
// =========================================================
//

type SubmissionResponse struct {
	SubmissionID           uuid.UUID `json:"submission_id"`
	SubmissionAssignmentID uuid.UUID `json:"submission_assignment_id"`
	SubmissionStudentID    uuid.UUID `json:"submission_student_id"`

	SubmissionFileURL     string                    `json:"submission_file_url"`
	SubmissionText        *string                   `json:"submission_text,omitempty"`
	SubmissionStatus      subModel.SubmissionStatus `json:"submission_status"`
	SubmissionSubmittedAt time.Time                 `json:"submission_submitted_at"`

	SubmissionScore              *float64       `json:"submission_score,omitempty"`
	SubmissionFeedback           *string        `json:"submission_feedback,omitempty"`
	SubmissionScores             map[string]any `json:"submission_scores,omitempty"`
	SubmissionGradedByLecturerID *uuid.UUID     `json:"submission_graded_by_lecturer_id,omitempty"`
	SubmissionGradedAt           *time.Time     `json:"submission_graded_at,omitempty"`

	SubmissionVersion int `json:"submission_version"`

	SubmissionCreatedAt time.Time `json:"submission_created_at"`
	SubmissionUpdatedAt time.Time `json:"submission_updated_at"`
}

func FromModel(m *subModel.SubmissionModel) SubmissionResponse {
	var scores map[string]any
	if m.SubmissionScores != nil {
		scores = map[string]any(m.SubmissionScores)
	}

	return SubmissionResponse{
		SubmissionID:           m.SubmissionID,
		SubmissionAssignmentID: m.SubmissionAssignmentID,
		SubmissionStudentID:    m.SubmissionStudentID,

		SubmissionFileURL:     m.SubmissionFileURL,
		SubmissionText:        m.SubmissionText,
		SubmissionStatus:      m.SubmissionStatus,
		SubmissionSubmittedAt: m.SubmissionSubmittedAt,

		SubmissionScore:              m.SubmissionScore,
		SubmissionFeedback:           m.SubmissionFeedback,
		SubmissionScores:             scores,
		SubmissionGradedByLecturerID: m.SubmissionGradedByLecturerID,
		SubmissionGradedAt:           m.SubmissionGradedAt,

		SubmissionVersion: m.SubmissionVersion,

		SubmissionCreatedAt: m.SubmissionCreatedAt,
		SubmissionUpdatedAt: m.SubmissionUpdatedAt,
	}
}

func FromModels(list []subModel.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

/*
SubmissionStateView: view-model untuk layar tugas mahasiswa.
State + allowed_actions turunan penuh dari satu enum + jam — UI tidak perlu
mengecek kombinasi flag sendiri.
*/
type SubmissionStateView struct {
	AssignmentID   uuid.UUID           `json:"assignment_id"`
	State          service.State       `json:"state"`
	AllowedActions []string            `json:"allowed_actions"`
	IsOverdue      bool                `json:"is_overdue"`
	Submission     *SubmissionResponse `json:"submission,omitempty"`
}

func NewStateView(assignmentID uuid.UUID, sub *subModel.SubmissionModel, dueAt, now time.Time) (SubmissionStateView, error) {
	state, err := service.ResolveState(sub, dueAt, now)
	if err != nil {
		return SubmissionStateView{}, err
	}
	view := SubmissionStateView{
		AssignmentID:   assignmentID,
		State:          state,
		AllowedActions: service.AllowedActions(state),
		IsOverdue:      service.IsOverdue(dueAt, now),
	}
	if sub != nil {
		resp := FromModel(sub)
		view.Submission = &resp
	}
	return view, nil
}

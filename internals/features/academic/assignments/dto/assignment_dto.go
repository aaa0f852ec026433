// file: internals/features/academic/assignments/dto/assignment_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	asgModel "kampusku_backend/internals/features/academic/assignments/model"
	"kampusku_backend/internals/features/academic/submissions/service"
)

/*
PatchField adalah util 3-state untuk PATCH:
- field tidak dikirim  -> Present=false
- field dikirim nilai  -> Present=true,  Value != nil
- field dikirim null   -> Present=true,  Value == nil
CATATAN:
  - untuk kolom NOT NULL (misal assignment_due_at),
    controller HARUS menolak null sebelum masuk ToUpdates
*/
type PatchField[T any] struct {
	Present bool `json:"-"`
	Value   *T   `json:"-"`
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) IsNull() bool       { return p.Present && p.Value == nil }
func (p PatchField[T]) ShouldUpdate() bool { return p.Present }

//
// =========================================================
// CREATE DTO
// =========================================================
//

type CreateAssignmentRequest struct {
	AssignmentCourseID    uuid.UUID `json:"assignment_course_id" validate:"required,uuid4"`
	AssignmentTitle       string    `json:"assignment_title" validate:"required,max=200"`
	AssignmentDescription *string   `json:"assignment_description,omitempty"`
	AssignmentDueAt       time.Time `json:"assignment_due_at" validate:"required"`

	AssignmentResourceURLs []string `json:"assignment_resource_urls,omitempty" validate:"omitempty,dive,url"`
	AssignmentFileURL      *string  `json:"assignment_file_url,omitempty" validate:"omitempty,url"`
}

// ToModel: created_by disuplai controller dari token
func (r CreateAssignmentRequest) ToModel(lecturerID uuid.UUID) *asgModel.AssignmentModel {
	return &asgModel.AssignmentModel{
		AssignmentCourseID:            r.AssignmentCourseID,
		AssignmentTitle:               r.AssignmentTitle,
		AssignmentDescription:         r.AssignmentDescription,
		AssignmentDueAt:               r.AssignmentDueAt,
		AssignmentResourceURLs:        pq.StringArray(r.AssignmentResourceURLs),
		AssignmentFileURL:             r.AssignmentFileURL,
		AssignmentCreatedByLecturerID: lecturerID,
	}
}

//
// =========================================================
// PATCH DTO (Partial Update)
// =========================================================
//

// Field PatchField HARUS bertipe value, bukan pointer: untuk pointer,
// encoding/json men-set nil tanpa memanggil UnmarshalJSON sehingga
// "dikirim null" tidak bisa dibedakan dari "tidak dikirim".
type PatchAssignmentRequest struct {
	AssignmentTitle        PatchField[string]    `json:"assignment_title"`
	AssignmentDescription  PatchField[string]    `json:"assignment_description"`
	AssignmentDueAt        PatchField[time.Time] `json:"assignment_due_at"` // NOT NULL → tidak boleh null
	AssignmentResourceURLs PatchField[[]string]  `json:"assignment_resource_urls"`
	AssignmentFileURL      PatchField[string]    `json:"assignment_file_url"`
}

/*
ToUpdates:
- field tidak dikirim -> di-skip
- field dikirim null -> set NULL (KECUALI due_at → controller harus blok)
- field dikirim nilai -> set value
*/
func (p *PatchAssignmentRequest) ToUpdates() map[string]any {
	upd := map[string]any{}

	if f := p.AssignmentTitle; f.ShouldUpdate() && !f.IsNull() {
		upd["assignment_title"] = *f.Value
	}
	if f := p.AssignmentDescription; f.ShouldUpdate() {
		if f.IsNull() {
			upd["assignment_description"] = nil
		} else {
			upd["assignment_description"] = *f.Value
		}
	}
	if f := p.AssignmentDueAt; f.ShouldUpdate() && !f.IsNull() {
		upd["assignment_due_at"] = *f.Value
	}
	if f := p.AssignmentResourceURLs; f.ShouldUpdate() {
		if f.IsNull() {
			upd["assignment_resource_urls"] = nil
		} else {
			upd["assignment_resource_urls"] = pq.StringArray(*f.Value)
		}
	}
	if f := p.AssignmentFileURL; f.ShouldUpdate() {
		if f.IsNull() {
			upd["assignment_file_url"] = nil
		} else {
			upd["assignment_file_url"] = *f.Value
		}
	}

	return upd
}

//
// =========================================================
// RESPONSE DTO
// =========================================================
//

type AssignmentResponse struct {
	AssignmentID       uuid.UUID `json:"assignment_id"`
	AssignmentCourseID uuid.UUID `json:"assignment_course_id"`

	AssignmentTitle       string    `json:"assignment_title"`
	AssignmentDescription *string   `json:"assignment_description,omitempty"`
	AssignmentDueAt       time.Time `json:"assignment_due_at"`

	AssignmentResourceURLs []string `json:"assignment_resource_urls,omitempty"`
	AssignmentFileURL      *string  `json:"assignment_file_url,omitempty"`

	AssignmentCreatedByLecturerID uuid.UUID `json:"assignment_created_by_lecturer_id"`

	// Turunan untuk UI — satu sumber kebenaran overdue
	AssignmentIsOverdue bool `json:"assignment_is_overdue"`

	AssignmentCreatedAt time.Time `json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `json:"assignment_updated_at"`
}

func FromModel(m *asgModel.AssignmentModel, now time.Time) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:       m.AssignmentID,
		AssignmentCourseID: m.AssignmentCourseID,

		AssignmentTitle:       m.AssignmentTitle,
		AssignmentDescription: m.AssignmentDescription,
		AssignmentDueAt:       m.AssignmentDueAt,

		AssignmentResourceURLs: []string(m.AssignmentResourceURLs),
		AssignmentFileURL:      m.AssignmentFileURL,

		AssignmentCreatedByLecturerID: m.AssignmentCreatedByLecturerID,

		AssignmentIsOverdue: service.IsOverdue(m.AssignmentDueAt, now),

		AssignmentCreatedAt: m.AssignmentCreatedAt,
		AssignmentUpdatedAt: m.AssignmentUpdatedAt,
	}
}

func FromModels(list []asgModel.AssignmentModel, now time.Time) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i], now))
	}
	return out
}

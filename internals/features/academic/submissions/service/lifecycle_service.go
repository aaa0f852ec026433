// file: internals/features/academic/submissions/service/lifecycle_service.go
package service

import (
	"strings"
	"time"

	"kampusku_backend/internals/features/academic/submissions/model"
	"kampusku_backend/internals/helpers/apperr"
)

/*
State lifecycle satu (assignment, student):

	not_submitted ──submit──▶ submitted ──grade──▶ graded
	      ▲                      │  │                 │
	      └──────unsubmit────────┘  └─reject─▶ rejected ◀─reject (buka ulang)─┘
	                                              │
	                                      resubmit▼
	                                        resubmitted ──grade──▶ graded

"not_submitted" dan "overdue_locked" adalah state turunan (tidak ada baris DB).
Semua fungsi di file ini pure: input record + jam, tanpa akses DB,
supaya tabel transisi bisa dites langsung.
*/
type State string

const (
	StateNotSubmitted  State = "not_submitted"
	StateSubmitted     State = "submitted"
	StateResubmitted   State = "resubmitted"
	StateGraded        State = "graded"
	StateRejected      State = "rejected"
	StateOverdueLocked State = "overdue_locked"
)

// Rentang nilai valid
const (
	GradeMin = 0.0
	GradeMax = 100.0
)

// Aksi yang boleh ditawarkan UI untuk sebuah state
const (
	ActionSubmit   = "submit"
	ActionResubmit = "resubmit"
	ActionUnsubmit = "unsubmit"
	ActionGrade    = "grade"
	ActionReject   = "reject"
)

// IsOverdue: sekarang sudah LEWAT tenggat. Tepat di tenggat masih boleh submit.
func IsOverdue(dueAt, now time.Time) bool {
	return now.After(dueAt)
}

// EnsureValidDueDate menolak tenggat zero-value sebagai fatal —
// tugas tanpa tenggat yang bisa dibaca TIDAK boleh diam-diam dianggap
// "tidak pernah overdue".
func EnsureValidDueDate(dueAt time.Time) error {
	if dueAt.IsZero() {
		return apperr.ErrInvalidDueDate
	}
	return nil
}

// ResolveState: satu-satunya sumber state enum.
// sub == nil berarti belum ada pengumpulan.
func ResolveState(sub *model.SubmissionModel, dueAt, now time.Time) (State, error) {
	if err := EnsureValidDueDate(dueAt); err != nil {
		return "", err
	}
	if sub == nil {
		if IsOverdue(dueAt, now) {
			return StateOverdueLocked, nil
		}
		return StateNotSubmitted, nil
	}
	switch sub.SubmissionStatus {
	case model.SubmissionStatusSubmitted:
		return StateSubmitted, nil
	case model.SubmissionStatusResubmitted:
		return StateResubmitted, nil
	case model.SubmissionStatusGraded:
		return StateGraded, nil
	case model.SubmissionStatusRejected:
		return StateRejected, nil
	default:
		return "", apperr.ErrInvalidTransition
	}
}

// AllowedActions: affordance murni dari state (UI tidak perlu cek flag lain).
func AllowedActions(state State) []string {
	switch state {
	case StateNotSubmitted:
		return []string{ActionSubmit}
	case StateSubmitted:
		return []string{ActionUnsubmit, ActionGrade, ActionReject}
	case StateResubmitted:
		return []string{ActionGrade}
	case StateRejected:
		return []string{ActionResubmit}
	case StateGraded:
		// graded stabil, tapi dosen boleh membuka ulang lewat reject
		return []string{ActionReject}
	default: // overdue_locked: read-only
		return []string{}
	}
}

/* =========================
   Guard per operasi
========================= */

// CheckSubmit: hanya dari not_submitted dan belum lewat tenggat.
// Keunikan pasangan (assignment, student) dijaga constraint DB, bukan di sini.
func CheckSubmit(dueAt, now time.Time) error {
	if err := EnsureValidDueDate(dueAt); err != nil {
		return err
	}
	if IsOverdue(dueAt, now) {
		return apperr.ErrDueDatePassed
	}
	return nil
}

// CheckUnsubmit: nilai yang sudah ada membekukan record.
func CheckUnsubmit(sub *model.SubmissionModel) error {
	if sub == nil {
		return apperr.ErrNotFound
	}
	if sub.SubmissionScore != nil {
		return apperr.ErrSubmissionLocked
	}
	return nil
}

// CheckResubmit: hanya dari rejected; tanpa guard tenggat (dibuka dosen).
func CheckResubmit(sub *model.SubmissionModel) error {
	if sub == nil {
		return apperr.ErrNotFound
	}
	if sub.SubmissionStatus != model.SubmissionStatusRejected {
		return apperr.ErrInvalidTransition
	}
	return nil
}

// CheckGrade: dari submitted/resubmitted, nilai dalam rentang.
func CheckGrade(sub *model.SubmissionModel, score float64) error {
	if sub == nil {
		return apperr.ErrNotFound
	}
	if sub.SubmissionStatus != model.SubmissionStatusSubmitted &&
		sub.SubmissionStatus != model.SubmissionStatusResubmitted {
		return apperr.ErrInvalidTransition
	}
	return ValidateScore(score)
}

// CheckReject: dari submitted, atau graded (buka ulang). Feedback wajib.
func CheckReject(sub *model.SubmissionModel, feedback string) error {
	if sub == nil {
		return apperr.ErrNotFound
	}
	if sub.SubmissionStatus != model.SubmissionStatusSubmitted &&
		sub.SubmissionStatus != model.SubmissionStatusGraded {
		return apperr.ErrInvalidTransition
	}
	if strings.TrimSpace(feedback) == "" {
		return apperr.ErrMissingFeedback
	}
	return nil
}

func ValidateScore(score float64) error {
	if score < GradeMin || score > GradeMax {
		return apperr.ErrInvalidGrade
	}
	return nil
}

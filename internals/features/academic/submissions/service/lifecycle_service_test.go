package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/features/academic/submissions/model"
	"kampusku_backend/internals/helpers/apperr"
)

var (
	due = time.Date(2025, 9, 15, 23, 59, 0, 0, time.UTC)

	beforeDue = due.Add(-24 * time.Hour)
	afterDue  = due.Add(1 * time.Minute)
)

func subWithStatus(status model.SubmissionStatus) *model.SubmissionModel {
	return &model.SubmissionModel{
		SubmissionStatus:      status,
		SubmissionFileURL:     "https://cdn.example.com/uploads/jawaban.pdf",
		SubmissionSubmittedAt: beforeDue,
		SubmissionVersion:     1,
	}
}

func gradedSub(score float64) *model.SubmissionModel {
	s := subWithStatus(model.SubmissionStatusGraded)
	s.SubmissionScore = &score
	return s
}

func TestIsOverdue(t *testing.T) {
	assert.False(t, IsOverdue(due, beforeDue))
	assert.False(t, IsOverdue(due, due), "tepat di tenggat belum overdue")
	assert.True(t, IsOverdue(due, afterDue))
}

func TestEnsureValidDueDate(t *testing.T) {
	assert.NoError(t, EnsureValidDueDate(due))
	assert.ErrorIs(t, EnsureValidDueDate(time.Time{}), apperr.ErrInvalidDueDate)
}

func TestResolveState(t *testing.T) {
	cases := []struct {
		name string
		sub  *model.SubmissionModel
		now  time.Time
		want State
	}{
		{"belum ada baris, belum tenggat", nil, beforeDue, StateNotSubmitted},
		{"belum ada baris, lewat tenggat", nil, afterDue, StateOverdueLocked},
		{"submitted", subWithStatus(model.SubmissionStatusSubmitted), beforeDue, StateSubmitted},
		{"resubmitted", subWithStatus(model.SubmissionStatusResubmitted), afterDue, StateResubmitted},
		{"graded", gradedSub(92), afterDue, StateGraded},
		{"rejected", subWithStatus(model.SubmissionStatusRejected), afterDue, StateRejected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveState(tc.sub, due, tc.now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveStateInvalidDueDate(t *testing.T) {
	_, err := ResolveState(nil, time.Time{}, beforeDue)
	assert.ErrorIs(t, err, apperr.ErrInvalidDueDate)
}

func TestAllowedActions(t *testing.T) {
	assert.Equal(t, []string{ActionSubmit}, AllowedActions(StateNotSubmitted))
	assert.Equal(t, []string{ActionUnsubmit, ActionGrade, ActionReject}, AllowedActions(StateSubmitted))
	assert.Equal(t, []string{ActionGrade}, AllowedActions(StateResubmitted))
	assert.Equal(t, []string{ActionResubmit}, AllowedActions(StateRejected))
	assert.Equal(t, []string{ActionReject}, AllowedActions(StateGraded))
	assert.Empty(t, AllowedActions(StateOverdueLocked))
}

func TestCheckSubmit(t *testing.T) {
	assert.NoError(t, CheckSubmit(due, beforeDue))
	assert.NoError(t, CheckSubmit(due, due))
	assert.ErrorIs(t, CheckSubmit(due, afterDue), apperr.ErrDueDatePassed)
	assert.ErrorIs(t, CheckSubmit(time.Time{}, beforeDue), apperr.ErrInvalidDueDate)
}

func TestCheckUnsubmit(t *testing.T) {
	assert.NoError(t, CheckUnsubmit(subWithStatus(model.SubmissionStatusSubmitted)))
	assert.ErrorIs(t, CheckUnsubmit(gradedSub(75)), apperr.ErrSubmissionLocked)
	assert.ErrorIs(t, CheckUnsubmit(nil), apperr.ErrNotFound)

	// rejected dengan nilai sudah dibersihkan → boleh unsubmit
	assert.NoError(t, CheckUnsubmit(subWithStatus(model.SubmissionStatusRejected)))
}

func TestCheckResubmit(t *testing.T) {
	assert.NoError(t, CheckResubmit(subWithStatus(model.SubmissionStatusRejected)))
	assert.ErrorIs(t, CheckResubmit(subWithStatus(model.SubmissionStatusSubmitted)), apperr.ErrInvalidTransition)
	assert.ErrorIs(t, CheckResubmit(gradedSub(80)), apperr.ErrInvalidTransition)
	assert.ErrorIs(t, CheckResubmit(nil), apperr.ErrNotFound)
}

func TestCheckGrade(t *testing.T) {
	assert.NoError(t, CheckGrade(subWithStatus(model.SubmissionStatusSubmitted), 92))
	assert.NoError(t, CheckGrade(subWithStatus(model.SubmissionStatusResubmitted), 88))
	assert.NoError(t, CheckGrade(subWithStatus(model.SubmissionStatusSubmitted), 0))
	assert.NoError(t, CheckGrade(subWithStatus(model.SubmissionStatusSubmitted), 100))

	assert.ErrorIs(t, CheckGrade(subWithStatus(model.SubmissionStatusSubmitted), -1), apperr.ErrInvalidGrade)
	assert.ErrorIs(t, CheckGrade(subWithStatus(model.SubmissionStatusSubmitted), 100.5), apperr.ErrInvalidGrade)
	assert.ErrorIs(t, CheckGrade(subWithStatus(model.SubmissionStatusRejected), 90), apperr.ErrInvalidTransition)
	assert.ErrorIs(t, CheckGrade(gradedSub(70), 90), apperr.ErrInvalidTransition)
	assert.ErrorIs(t, CheckGrade(nil, 90), apperr.ErrNotFound)
}

func TestCheckReject(t *testing.T) {
	assert.NoError(t, CheckReject(subWithStatus(model.SubmissionStatusSubmitted), "kumpulkan ulang dengan sitasi"))
	assert.NoError(t, CheckReject(gradedSub(60), "nilai dibuka ulang"), "graded boleh dibuka ulang oleh dosen")

	assert.ErrorIs(t, CheckReject(subWithStatus(model.SubmissionStatusSubmitted), "   "), apperr.ErrMissingFeedback)
	assert.ErrorIs(t, CheckReject(subWithStatus(model.SubmissionStatusRejected), "lagi"), apperr.ErrInvalidTransition)
	assert.ErrorIs(t, CheckReject(subWithStatus(model.SubmissionStatusResubmitted), "x"), apperr.ErrInvalidTransition)
	assert.ErrorIs(t, CheckReject(nil, "x"), apperr.ErrNotFound)
}

// Skenario: submit → grade 92 → unsubmit ditolak.
func TestScenarioGradeThenUnsubmitLocked(t *testing.T) {
	sub := subWithStatus(model.SubmissionStatusSubmitted)

	require.NoError(t, CheckGrade(sub, 92))
	score := 92.0
	sub.SubmissionStatus = model.SubmissionStatusGraded
	sub.SubmissionScore = &score

	state, err := ResolveState(sub, due, afterDue)
	require.NoError(t, err)
	assert.Equal(t, StateGraded, state)

	assert.ErrorIs(t, CheckUnsubmit(sub), apperr.ErrSubmissionLocked)
}

// Skenario: reject dengan feedback → resubmit → grade 88.
func TestScenarioRejectResubmitGrade(t *testing.T) {
	sub := subWithStatus(model.SubmissionStatusSubmitted)

	require.NoError(t, CheckReject(sub, "resubmit with citations"))
	fb := "resubmit with citations"
	sub.SubmissionStatus = model.SubmissionStatusRejected
	sub.SubmissionFeedback = &fb

	require.NoError(t, CheckResubmit(sub))
	sub.SubmissionStatus = model.SubmissionStatusResubmitted
	sub.SubmissionScore = nil
	sub.SubmissionFeedback = nil

	state, err := ResolveState(sub, due, afterDue)
	require.NoError(t, err)
	assert.Equal(t, StateResubmitted, state)

	require.NoError(t, CheckGrade(sub, 88))
	sub.SubmissionStatus = model.SubmissionStatusGraded

	state, err = ResolveState(sub, due, afterDue)
	require.NoError(t, err)
	assert.Equal(t, StateGraded, state)
}

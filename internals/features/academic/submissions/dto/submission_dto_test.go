package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/features/academic/submissions/service"
	"kampusku_backend/internals/helpers/apperr"
)

// Pembagian kerja penilaian: validator hanya menjaga KEHADIRAN skor,
// rentang nilai dijaga service supaya error_code INVALID_GRADE yang keluar,
// bukan 400 generik.
func TestGradeRequestScoreValidation(t *testing.T) {
	v := validator.New()

	// skor di luar rentang LOLOS validator, lalu ditangkap service
	out := 150.0
	require.NoError(t, v.Struct(&GradeRequest{SubmissionScore: &out}))
	assert.ErrorIs(t, service.ValidateScore(out), apperr.ErrInvalidGrade)

	neg := -1.0
	require.NoError(t, v.Struct(&GradeRequest{SubmissionScore: &neg}))
	assert.ErrorIs(t, service.ValidateScore(neg), apperr.ErrInvalidGrade)

	// payload tanpa skor ditolak validator — tidak boleh diam-diam jadi 0
	assert.Error(t, v.Struct(&GradeRequest{}))

	// skor 0 eksplisit sah
	zero := 0.0
	require.NoError(t, v.Struct(&GradeRequest{SubmissionScore: &zero}))
	assert.NoError(t, service.ValidateScore(zero))
}

func TestRejectRequestFeedbackRequired(t *testing.T) {
	v := validator.New()
	assert.Error(t, v.Struct(&RejectRequest{}))
	assert.NoError(t, v.Struct(&RejectRequest{SubmissionFeedback: "perbaiki bab 2"}))
}

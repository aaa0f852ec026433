package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attModel "kampusku_backend/internals/features/academic/attendance/model"
	subModel "kampusku_backend/internals/features/academic/submissions/model"
)

func sessions(semester int, kind attModel.SessionOfDay, present, absent int) []attModel.AttendanceSessionModel {
	out := make([]attModel.AttendanceSessionModel, 0, present+absent)
	for i := 0; i < present; i++ {
		out = append(out, attModel.AttendanceSessionModel{
			AttendanceSessionSemester: semester,
			AttendanceSessionOfDay:    kind,
			AttendanceSessionPresent:  true,
		})
	}
	for i := 0; i < absent; i++ {
		out = append(out, attModel.AttendanceSessionModel{
			AttendanceSessionSemester: semester,
			AttendanceSessionOfDay:    kind,
			AttendanceSessionPresent:  false,
		})
	}
	return out
}

func TestRound2HalfUp(t *testing.T) {
	assert.Equal(t, 82.5, Round2(82.5))
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, 66.67, Round2(66.666666))
	assert.Equal(t, 100.0, Round2(100))
}

func TestPercentageZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(5, 0))
	assert.Equal(t, 50.0, Percentage(1, 2))
}

// Semester dengan 18/20 pagi dan 15/20 sore harus menghasilkan 82.5,
// bukan rata-rata dari dua persentase terpisah.
func TestSemesterAttendanceCombinedSessions(t *testing.T) {
	all := append(
		sessions(3, attModel.SessionForenoon, 18, 2),
		sessions(3, attModel.SessionAfternoon, 15, 5)...,
	)

	got := SemesterAttendance(all)
	require.Contains(t, got, 3)

	st := got[3]
	assert.Equal(t, SessionStat{Present: 18, Conducted: 20}, st.Forenoon)
	assert.Equal(t, SessionStat{Present: 15, Conducted: 20}, st.Afternoon)
	assert.Equal(t, 82.5, st.Percent)
}

func TestSemesterAttendanceMultiSemester(t *testing.T) {
	all := append(
		sessions(1, attModel.SessionForenoon, 10, 0),
		sessions(2, attModel.SessionAfternoon, 1, 2)...,
	)

	got := SemesterAttendance(all)
	require.Len(t, got, 2)
	assert.Equal(t, 100.0, got[1].Percent)
	assert.Equal(t, 33.33, got[2].Percent)
}

func TestSemesterAttendanceEmpty(t *testing.T) {
	assert.Empty(t, SemesterAttendance(nil))
}

func TestOverallAttendance(t *testing.T) {
	all := append(
		sessions(1, attModel.SessionForenoon, 18, 2),
		sessions(2, attModel.SessionAfternoon, 15, 5)...,
	)
	st := OverallAttendance(all)
	assert.Equal(t, 82.5, st.Percent)

	// belum ada sesi sama sekali -> 0, bukan NaN
	assert.Equal(t, 0.0, OverallAttendance(nil).Percent)
}

func TestCompletionPercent(t *testing.T) {
	subs := []subModel.SubmissionModel{
		{SubmissionStatus: subModel.SubmissionStatusSubmitted},
		{SubmissionStatus: subModel.SubmissionStatusGraded},
		{SubmissionStatus: subModel.SubmissionStatusResubmitted},
		{SubmissionStatus: subModel.SubmissionStatusRejected}, // dikembalikan = belum selesai
	}

	// 3 dari 5 tugas selesai; tugas tanpa baris tetap dihitung belum selesai
	assert.Equal(t, 60.0, CompletionPercent(5, subs))
	assert.Equal(t, 0.0, CompletionPercent(0, subs))
	assert.Equal(t, 0.0, CompletionPercent(4, nil))
}

func TestAverageGrade(t *testing.T) {
	score := func(v float64) *float64 { return &v }

	subs := []subModel.SubmissionModel{
		{SubmissionStatus: subModel.SubmissionStatusGraded, SubmissionScore: score(80)},
		{SubmissionStatus: subModel.SubmissionStatusGraded, SubmissionScore: score(91)},
		{SubmissionStatus: subModel.SubmissionStatusSubmitted}, // belum dinilai, di-skip
	}

	avg, ok := AverageGrade(subs)
	require.True(t, ok)
	assert.Equal(t, 85.5, avg)
}

// Belum ada nilai sama sekali -> sentinel N/A, harus bisa dibedakan dari 0.
func TestAverageGradeNoGraded(t *testing.T) {
	_, ok := AverageGrade([]subModel.SubmissionModel{
		{SubmissionStatus: subModel.SubmissionStatusSubmitted},
	})
	assert.False(t, ok)

	_, ok = AverageGrade(nil)
	assert.False(t, ok)
}

// Nilai 0 adalah nilai sah, bukan sentinel.
func TestAverageGradeZeroIsValid(t *testing.T) {
	zero := 0.0
	avg, ok := AverageGrade([]subModel.SubmissionModel{
		{SubmissionStatus: subModel.SubmissionStatusGraded, SubmissionScore: &zero},
	})
	require.True(t, ok)
	assert.Equal(t, 0.0, avg)
}

// file: internals/features/academic/progress/service/progress_service.go
package service

import (
	"math"
	"strconv"

	attModel "kampusku_backend/internals/features/academic/attendance/model"
	subModel "kampusku_backend/internals/features/academic/submissions/model"
)

/*
Mesin agregasi progres: fungsi murni atas slice record.
Tidak ada akses DB di sini; controller yang memuat data.
Aturan dasar:
- pembagi nol -> 0, bukan error (mahasiswa baru belum punya data)
- persentase dibulatkan half-up 2 desimal
- rata-rata nilai tanpa data -> sentinel N/A, BUKAN 0
*/

// Round2 membulatkan half-up ke 2 desimal.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// Percentage: present/total * 100, total 0 -> tepat 0.
func Percentage(present, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round2(float64(present) / float64(total) * 100)
}

// Statistik satu jenis sesi (fn atau an).
type SessionStat struct {
	Present   int `json:"present"`
	Conducted int `json:"conducted"`
}

// Rekap kehadiran satu semester: pagi + sore + persentase gabungan.
type SemesterStat struct {
	Forenoon  SessionStat `json:"fn"`
	Afternoon SessionStat `json:"an"`
	Percent   float64     `json:"percentage"`
}

func (s SemesterStat) totalPresent() int   { return s.Forenoon.Present + s.Afternoon.Present }
func (s SemesterStat) totalConducted() int { return s.Forenoon.Conducted + s.Afternoon.Conducted }

func finalize(s SemesterStat) SemesterStat {
	s.Percent = Percentage(s.totalPresent(), s.totalConducted())
	return s
}

// SemesterAttendance mengelompokkan sesi per semester.
// Sesi fn dan an dihitung terpisah lalu digabung untuk persentase.
func SemesterAttendance(sessions []attModel.AttendanceSessionModel) map[int]SemesterStat {
	out := map[int]SemesterStat{}
	for i := range sessions {
		sess := &sessions[i]
		st := out[sess.AttendanceSessionSemester]
		switch sess.AttendanceSessionOfDay {
		case attModel.SessionForenoon:
			st.Forenoon.Conducted++
			if sess.AttendanceSessionPresent {
				st.Forenoon.Present++
			}
		case attModel.SessionAfternoon:
			st.Afternoon.Conducted++
			if sess.AttendanceSessionPresent {
				st.Afternoon.Present++
			}
		}
		out[sess.AttendanceSessionSemester] = st
	}
	for sem, st := range out {
		out[sem] = finalize(st)
	}
	return out
}

// OverallAttendance meratakan seluruh sesi lintas semester.
func OverallAttendance(sessions []attModel.AttendanceSessionModel) SemesterStat {
	var st SemesterStat
	for i := range sessions {
		sess := &sessions[i]
		switch sess.AttendanceSessionOfDay {
		case attModel.SessionForenoon:
			st.Forenoon.Conducted++
			if sess.AttendanceSessionPresent {
				st.Forenoon.Present++
			}
		case attModel.SessionAfternoon:
			st.Afternoon.Conducted++
			if sess.AttendanceSessionPresent {
				st.Afternoon.Present++
			}
		}
	}
	return finalize(st)
}

// isComplete: submission dianggap "selesai" kalau pernah masuk dan belum
// dikembalikan. Tidak ada baris = belum selesai, termasuk yang sudah lewat tenggat.
func isComplete(status subModel.SubmissionStatus) bool {
	switch status {
	case subModel.SubmissionStatusSubmitted,
		subModel.SubmissionStatusResubmitted,
		subModel.SubmissionStatusGraded:
		return true
	default:
		return false
	}
}

// CompletionPercent: berapa persen dari total tugas yang sudah dikumpulkan.
func CompletionPercent(totalAssignments int, submissions []subModel.SubmissionModel) float64 {
	if totalAssignments <= 0 {
		return 0
	}
	done := 0
	for i := range submissions {
		if isComplete(submissions[i].SubmissionStatus) {
			done++
		}
	}
	return Percentage(done, totalAssignments)
}

// AverageGrade merata-rata submission ber-status graded yang punya skor.
// ok=false saat belum ada yang dinilai; 0 adalah nilai sah, bukan sentinel.
func AverageGrade(submissions []subModel.SubmissionModel) (float64, bool) {
	var sum float64
	n := 0
	for i := range submissions {
		sub := &submissions[i]
		if sub.SubmissionStatus != subModel.SubmissionStatusGraded || sub.SubmissionScore == nil {
			continue
		}
		sum += *sub.SubmissionScore
		n++
	}
	if n == 0 {
		return 0, false
	}
	return Round2(sum / float64(n)), true
}

// FormatGrade menampilkan nilai untuk label UI, mis. "85.5".
func FormatGrade(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

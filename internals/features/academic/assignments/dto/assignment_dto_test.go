package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tri-state decode: absen vs null vs nilai harus bisa dibedakan.
func TestPatchFieldTriState(t *testing.T) {
	var p PatchAssignmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"assignment_title": "Tugas Besar 2",
		"assignment_description": null
	}`), &p))

	// dikirim nilai
	assert.True(t, p.AssignmentTitle.ShouldUpdate())
	assert.False(t, p.AssignmentTitle.IsNull())
	require.NotNil(t, p.AssignmentTitle.Value)
	assert.Equal(t, "Tugas Besar 2", *p.AssignmentTitle.Value)

	// dikirim null eksplisit — UnmarshalJSON tetap harus terpanggil
	assert.True(t, p.AssignmentDescription.ShouldUpdate())
	assert.True(t, p.AssignmentDescription.IsNull())

	// tidak dikirim
	assert.False(t, p.AssignmentDueAt.ShouldUpdate())
	assert.False(t, p.AssignmentFileURL.ShouldUpdate())
}

func TestPatchToUpdates(t *testing.T) {
	due := time.Date(2026, 9, 30, 23, 59, 0, 0, time.UTC)
	var p PatchAssignmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"assignment_title": "Revisi",
		"assignment_description": null,
		"assignment_due_at": "2026-09-30T23:59:00Z",
		"assignment_file_url": null
	}`), &p))

	upd := p.ToUpdates()
	assert.Equal(t, "Revisi", upd["assignment_title"])
	assert.Equal(t, due, upd["assignment_due_at"])

	// null eksplisit -> kolom ikut di-set NULL, bukan dibuang
	v, ok := upd["assignment_description"]
	assert.True(t, ok)
	assert.Nil(t, v)
	v, ok = upd["assignment_file_url"]
	assert.True(t, ok)
	assert.Nil(t, v)

	// resource_urls tidak dikirim -> tidak boleh ikut
	_, ok = upd["assignment_resource_urls"]
	assert.False(t, ok)
}

// due_at dikirim null harus terdeteksi (controller menolak sebelum ToUpdates).
func TestPatchDueAtNullDetectable(t *testing.T) {
	var p PatchAssignmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{"assignment_due_at": null}`), &p))
	assert.True(t, p.AssignmentDueAt.IsNull())

	// dan ToUpdates sendiri tidak pernah menulis due_at null
	_, ok := p.ToUpdates()["assignment_due_at"]
	assert.False(t, ok)
}

func TestPatchEmptyBodyProducesNoUpdates(t *testing.T) {
	var p PatchAssignmentRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.Empty(t, p.ToUpdates())
}

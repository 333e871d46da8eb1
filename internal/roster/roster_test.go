package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/chaintable"
)

const examMarks = `
students:
  - name: Ivana
    grade: 2
  - name: Ante
    grade: 2
  - name: Jasna
    grade: 2
  - name: Kristina
    grade: 5
  - name: Ivana
    grade: 5
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(examMarks), 0644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, r.Students, 5)
	assert.Equal(t, Student{Name: "Kristina", Grade: 5}, r.Students[3])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read roster")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("students: [ {name: "))
	assert.ErrorContains(t, err, "failed to decode roster")

	_, err = Parse([]byte(`
students:
  - name: ""
    grade: 3
  - name: Ante
    grade: 7
`))
	assert.True(t, errors.Is(err, ErrInvalidRoster))
	assert.ErrorContains(t, err, "student #1 has no name")
	assert.ErrorContains(t, err, "student #2 (Ante) has grade 7")
}

func TestApplyAndDrop(t *testing.T) {
	r, err := Parse([]byte(examMarks))
	require.NoError(t, err)

	marks := chaintable.MustNew[string, int](chaintable.WithSlots(2))
	Apply(marks, r)

	assert.Equal(t, 4, marks.Size())
	grade, found := marks.Get("Ivana")
	assert.True(t, found)
	assert.Equal(t, 5, grade)

	assert.Equal(t, 2, WithGrade(marks, r, 2))
	assert.Equal(t, 2, WithGrade(marks, r, 5))
	assert.Equal(t, 0, WithGrade(marks, r, 3))

	assert.Equal(t, 1, Drop(marks, "Kristina", "Marko"))
	assert.Equal(t, 3, marks.Size())
	assert.False(t, marks.ContainsKey("Kristina"))
	assert.True(t, marks.ContainsKey("Ivana"))

	assert.Equal(t, 0, Drop(marks, "Kristina"))
	assert.Equal(t, 1, WithGrade(marks, r, 5))
}

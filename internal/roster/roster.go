// Package roster loads student grade rosters and records them in a
// chaintable keyed by student name.
package roster

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/theflywheel/chaintable"
)

const (
	MinGrade = 1
	MaxGrade = 5
)

var ErrInvalidRoster = errors.New("roster: invalid roster")

type Student struct {
	Name  string `yaml:"name"`
	Grade int    `yaml:"grade"`
}

type Roster struct {
	Students []Student `yaml:"students"`
}

// Marks is the table a roster is recorded into
type Marks = chaintable.Table[string, int]

// Load reads and validates a YAML roster file
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read roster %s", path)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load roster %s", path)
	}
	return r, nil
}

// Parse decodes and validates a YAML roster
func Parse(data []byte) (*Roster, error) {
	r := &Roster{}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, errors.Wrap(err, "failed to decode roster")
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate reports every student with an empty name or a grade outside
// MinGrade..MaxGrade.
func (r *Roster) Validate() error {
	var errs error
	for i, s := range r.Students {
		if s.Name == "" {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidRoster, "student #%d has no name", i+1))
		}
		if s.Grade < MinGrade || s.Grade > MaxGrade {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidRoster,
				"student #%d (%s) has grade %d, expected %d..%d", i+1, s.Name, s.Grade, MinGrade, MaxGrade))
		}
	}
	return errs
}

// Apply records every student's grade. A name listed more than once keeps
// the last grade.
func Apply(marks *Marks, r *Roster) {
	for _, s := range r.Students {
		if old, found := marks.Get(s.Name); found {
			slog.Debug(
				"Updating grade",
				slog.String("name", s.Name),
				slog.Int("old-grade", old),
				slog.Int("grade", s.Grade),
			)
		} else {
			slog.Debug(
				"Adding student",
				slog.String("name", s.Name),
				slog.Int("grade", s.Grade),
			)
		}
		marks.Put(s.Name, s.Grade)
	}
}

// Drop removes the named students and returns how many were actually present
func Drop(marks *Marks, names ...string) int {
	dropped := 0
	for _, name := range names {
		if !marks.ContainsKey(name) {
			slog.Debug("Student not in roster", slog.String("name", name))
			continue
		}
		marks.Remove(name)
		dropped++
	}
	return dropped
}

// WithGrade returns how many students hold the given grade
func WithGrade(marks *Marks, r *Roster, grade int) int {
	if !marks.ContainsValue(grade) {
		return 0
	}
	count := 0
	seen := make(map[string]bool, len(r.Students))
	for _, s := range r.Students {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		if g, found := marks.Get(s.Name); found && g == grade {
			count++
		}
	}
	return count
}

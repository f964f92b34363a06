package service

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/registrar/internal/domain"
	"github.com/alexanderramin/registrar/internal/registry"
)

// Enrollment is the only writer of a department. Mutations hold the write
// lock for their whole duration; queries hold the read lock while building
// their snapshot.
type Enrollment struct {
	mu       sync.RWMutex
	dept     *registry.Department
	observer UseCaseObserver
}

func NewEnrollment(dept *registry.Department, observers ...UseCaseObserver) *Enrollment {
	return &Enrollment{
		dept:     dept,
		observer: useCaseObserverOrNoop(observers),
	}
}

// mutate runs fn under the write lock and reports the outcome to the observer.
func (s *Enrollment) mutate(ctx context.Context, name string, fields map[string]any, fn func(d *registry.Department) error) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.dept)
}

func (s *Enrollment) read(ctx context.Context, fn func(d *registry.Department) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.dept)
}

func (s *Enrollment) AddCourse(ctx context.Context, c *domain.Course) error {
	fields := map[string]any{"course": c.Code(), "capacity": c.Capacity()}
	return s.mutate(ctx, "add-course", fields, func(d *registry.Department) error {
		d.AddCourse(c)
		return nil
	})
}

func (s *Enrollment) AddFaculty(ctx context.Context, f domain.FacultyMember) error {
	fields := map[string]any{"faculty": f.ID(), "role": string(f.Role())}
	return s.mutate(ctx, "add-faculty", fields, func(d *registry.Department) error {
		d.AddFaculty(f)
		return nil
	})
}

func (s *Enrollment) AddStaff(ctx context.Context, st *domain.Staff) error {
	return s.mutate(ctx, "add-staff", map[string]any{"staff": st.ID()}, func(d *registry.Department) error {
		d.AddStaff(st)
		return nil
	})
}

func (s *Enrollment) AddStudent(ctx context.Context, st domain.Enrollee) error {
	_, managed := st.(domain.RecordManager)
	fields := map[string]any{"student": st.ID(), "managed": managed}
	return s.mutate(ctx, "add-student", fields, func(d *registry.Department) error {
		d.AddStudent(st)
		return nil
	})
}

func (s *Enrollment) AssignFaculty(ctx context.Context, facultyID, courseCode string) error {
	fields := map[string]any{"faculty": facultyID, "course": courseCode}
	return s.mutate(ctx, "assign-faculty", fields, func(d *registry.Department) error {
		return d.AssignFacultyToCourse(facultyID, courseCode)
	})
}

func (s *Enrollment) Register(ctx context.Context, studentID, courseCode string) error {
	fields := map[string]any{"student": studentID, "course": courseCode}
	return s.mutate(ctx, "register-student", fields, func(d *registry.Department) error {
		if err := d.RegisterStudentForCourse(studentID, courseCode); err != nil {
			return err
		}
		if c, err := d.Course(courseCode); err == nil {
			fields["seats_left"] = c.SeatsLeft()
		}
		return nil
	})
}

func (s *Enrollment) Drop(ctx context.Context, studentID, courseCode string) error {
	fields := map[string]any{"student": studentID, "course": courseCode}
	return s.mutate(ctx, "drop-student", fields, func(d *registry.Department) error {
		return d.DropStudentFromCourse(studentID, courseCode)
	})
}

func (s *Enrollment) RecordGrade(ctx context.Context, studentID, courseCode, letter string) error {
	fields := map[string]any{"student": studentID, "course": courseCode, "grade": letter}
	return s.mutate(ctx, "record-grade", fields, func(d *registry.Department) error {
		return d.RecordGrade(studentID, courseCode, letter)
	})
}

func (s *Enrollment) RecordSemesterGPA(ctx context.Context, studentID, semester string, gpa float64) error {
	fields := map[string]any{"student": studentID, "semester": semester, "gpa": gpa}
	return s.mutate(ctx, "record-semester-gpa", fields, func(d *registry.Department) error {
		return d.RecordSemesterGPA(studentID, semester, gpa)
	})
}

func (s *Enrollment) Transcript(ctx context.Context, studentID string) (*Transcript, error) {
	var t *Transcript
	err := s.read(ctx, func(d *registry.Department) error {
		st, err := d.Student(studentID)
		if err != nil {
			return err
		}
		t = buildTranscript(d, st)
		return nil
	})
	return t, err
}

func (s *Enrollment) Roster(ctx context.Context, courseCode string) (*Roster, error) {
	var r *Roster
	err := s.read(ctx, func(d *registry.Department) error {
		c, err := d.Course(courseCode)
		if err != nil {
			return err
		}
		r = &Roster{Course: summarizeCourse(d, c)}
		for _, id := range c.Enrolled() {
			st, err := d.Student(id)
			if err != nil {
				r.Students = append(r.Students, StudentSummary{PersonSummary: PersonSummary{ID: id}})
				continue
			}
			r.Students = append(r.Students, summarizeStudent(st))
		}
		return nil
	})
	return r, err
}

func (s *Enrollment) Directory(ctx context.Context) (*Directory, error) {
	var dir *Directory
	err := s.read(ctx, func(d *registry.Department) error {
		dir = &Directory{Name: d.Name()}
		for _, c := range d.Courses() {
			dir.Courses = append(dir.Courses, summarizeCourse(d, c))
		}
		for _, f := range d.FacultyMembers() {
			dir.Faculty = append(dir.Faculty, summarizePerson(f))
		}
		for _, st := range d.StaffMembers() {
			dir.Staff = append(dir.Staff, summarizePerson(st))
		}
		for _, st := range d.Students() {
			dir.Students = append(dir.Students, summarizeStudent(st))
		}
		return nil
	})
	return dir, err
}

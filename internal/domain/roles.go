package domain

type Role string

const (
	RoleStaff     Role = "Staff"
	RoleStudent   Role = "Student"
	RoleProfessor Role = "Professor"
	RoleLecturer  Role = "Lecturer"
	RoleTA        Role = "TA"
)

// ValidRanks maps the faculty rank names accepted by importers to roles.
var ValidRanks = map[string]Role{
	"professor": RoleProfessor,
	"lecturer":  RoleLecturer,
	"ta":        RoleTA,
}

type StudentLevel string

const (
	LevelUndergraduate StudentLevel = "Undergraduate"
	LevelGraduate      StudentLevel = "Graduate"
)

// WorkloadCalculator is implemented by roles with a weekly teaching load.
type WorkloadCalculator interface {
	// Workload returns teaching, research and service load in hours per week.
	Workload() int
}

// FacultyMember is a person with a department and a weekly workload.
type FacultyMember interface {
	Person
	WorkloadCalculator
	Department() string
}

// Enrollee is any student, with or without record management.
type Enrollee interface {
	Person
	Level() StudentLevel
}

type Staff struct {
	Identity
}

func NewStaff(id, name, email string) (*Staff, error) {
	ident, err := NewIdentity(id, name, email)
	if err != nil {
		return nil, err
	}
	return &Staff{Identity: ident}, nil
}

func (*Staff) Role() Role { return RoleStaff }

func (*Staff) Responsibilities() []string {
	return []string{"Administrative support", "Operations", "Student services"}
}

type Student struct {
	Identity
	level StudentLevel
}

func newStudent(id, name, email string, level StudentLevel) (*Student, error) {
	ident, err := NewIdentity(id, name, email)
	if err != nil {
		return nil, err
	}
	return &Student{Identity: ident, level: level}, nil
}

// NewUndergraduate returns a student without record management.
func NewUndergraduate(id, name, email string) (*Student, error) {
	return newStudent(id, name, email, LevelUndergraduate)
}

// NewGraduate returns a student without record management.
func NewGraduate(id, name, email string) (*Student, error) {
	return newStudent(id, name, email, LevelGraduate)
}

func (s *Student) Level() StudentLevel { return s.level }

func (*Student) Role() Role { return RoleStudent }

func (*Student) Responsibilities() []string {
	return []string{"Attend classes", "Complete assignments", "Maintain academic integrity"}
}

// Faculty carries the fields shared by every teaching rank. It is embedded by
// Professor, Lecturer and TA and is not a role on its own.
type Faculty struct {
	Identity
	department string
}

func newFaculty(id, name, email, department string) (Faculty, error) {
	ident, err := NewIdentity(id, name, email)
	if err != nil {
		return Faculty{}, err
	}
	return Faculty{Identity: ident, department: department}, nil
}

func (f *Faculty) Department() string { return f.department }

type Professor struct{ Faculty }

func NewProfessor(id, name, email, department string) (*Professor, error) {
	f, err := newFaculty(id, name, email, department)
	if err != nil {
		return nil, err
	}
	return &Professor{Faculty: f}, nil
}

func (*Professor) Role() Role { return RoleProfessor }

func (*Professor) Responsibilities() []string {
	return []string{"Teach courses", "Research & publish", "Supervise students", "Service"}
}

func (*Professor) Workload() int { return 12 }

type Lecturer struct{ Faculty }

func NewLecturer(id, name, email, department string) (*Lecturer, error) {
	f, err := newFaculty(id, name, email, department)
	if err != nil {
		return nil, err
	}
	return &Lecturer{Faculty: f}, nil
}

func (*Lecturer) Role() Role { return RoleLecturer }

func (*Lecturer) Responsibilities() []string {
	return []string{"Teach courses", "Develop curricula", "Advise students"}
}

func (*Lecturer) Workload() int { return 16 }

type TA struct{ Faculty }

func NewTA(id, name, email, department string) (*TA, error) {
	f, err := newFaculty(id, name, email, department)
	if err != nil {
		return nil, err
	}
	return &TA{Faculty: f}, nil
}

func (*TA) Role() Role { return RoleTA }

func (*TA) Responsibilities() []string {
	return []string{"Assist teaching", "Grade assignments", "Hold office hours"}
}

func (*TA) Workload() int { return 10 }

// NewFacultyMember builds the faculty variant matching role.
func NewFacultyMember(role Role, id, name, email, department string) (FacultyMember, error) {
	f, err := newFaculty(id, name, email, department)
	if err != nil {
		return nil, err
	}
	switch role {
	case RoleProfessor:
		return &Professor{Faculty: f}, nil
	case RoleLecturer:
		return &Lecturer{Faculty: f}, nil
	case RoleTA:
		return &TA{Faculty: f}, nil
	default:
		return nil, newError("person", "NewFacultyMember", ErrValidation, "unknown faculty rank "+string(role))
	}
}

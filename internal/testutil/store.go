// Package testutil provides in-memory repositories and a unit of work for
// usecase and service tests. Repositories ignore the *gorm.DB argument.
package testutil

import (
	"sync"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
)

// LinkWrite records one doctor_specializations row written by the store.
type LinkWrite struct {
	Op               string
	DoctorID         uuid.UUID
	SpecializationID uuid.UUID
}

// Store is the shared state behind every in-memory repository.
type Store struct {
	mu sync.Mutex

	Admins          map[uuid.UUID]entity.Admin
	Doctors         map[uuid.UUID]entity.Doctor
	Patients        map[uuid.UUID]entity.Patient
	Specializations map[uuid.UUID]entity.Specialization
	DoctorLinks     map[uuid.UUID]map[uuid.UUID]struct{}
	Accounts        map[uuid.UUID]entity.Account
	Attendances     map[uuid.UUID]entity.Attendance
	IdentityUsers   map[uuid.UUID]entity.IdentityUser
	UserRoles       map[uuid.UUID][]int
	Roles           map[int]entity.Role
	AuditLogs       []entity.AuditLog

	// LinkWrites is appended to on every association insert or delete and
	// is not rolled back.
	LinkWrites []LinkWrite

	// Failures makes the named operation (for example "account.create")
	// return the error instead of writing.
	Failures map[string]error

	nextRoleID  int
	nextAuditID int64
}

func NewStore() *Store {
	return &Store{
		Admins:          map[uuid.UUID]entity.Admin{},
		Doctors:         map[uuid.UUID]entity.Doctor{},
		Patients:        map[uuid.UUID]entity.Patient{},
		Specializations: map[uuid.UUID]entity.Specialization{},
		DoctorLinks:     map[uuid.UUID]map[uuid.UUID]struct{}{},
		Accounts:        map[uuid.UUID]entity.Account{},
		Attendances:     map[uuid.UUID]entity.Attendance{},
		IdentityUsers:   map[uuid.UUID]entity.IdentityUser{},
		UserRoles:       map[uuid.UUID][]int{},
		Roles:           map[int]entity.Role{},
		Failures:        map[string]error{},
	}
}

// Fail makes op return err until cleared with Fail(op, nil).
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.Failures, op)
		return
	}
	s.Failures[op] = err
}

// SeedRoles creates the given roles and returns the store for chaining.
func (s *Store) SeedRoles(names ...string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		s.nextRoleID++
		s.Roles[s.nextRoleID] = entity.Role{ID: s.nextRoleID, RoleName: name}
	}
	return s
}

// ResetLinkWrites clears the recorded association writes.
func (s *Store) ResetLinkWrites() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LinkWrites = nil
}

func (s *Store) failure(op string) error {
	return s.Failures[op]
}

type snapshot struct {
	admins          map[uuid.UUID]entity.Admin
	doctors         map[uuid.UUID]entity.Doctor
	patients        map[uuid.UUID]entity.Patient
	specializations map[uuid.UUID]entity.Specialization
	doctorLinks     map[uuid.UUID]map[uuid.UUID]struct{}
	accounts        map[uuid.UUID]entity.Account
	attendances     map[uuid.UUID]entity.Attendance
	identityUsers   map[uuid.UUID]entity.IdentityUser
	userRoles       map[uuid.UUID][]int
	roles           map[int]entity.Role
	auditLogs       []entity.AuditLog
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	links := make(map[uuid.UUID]map[uuid.UUID]struct{}, len(s.DoctorLinks))
	for doctorID, set := range s.DoctorLinks {
		links[doctorID] = copyMap(set)
	}
	userRoles := make(map[uuid.UUID][]int, len(s.UserRoles))
	for userID, roles := range s.UserRoles {
		userRoles[userID] = append([]int(nil), roles...)
	}

	return snapshot{
		admins:          copyMap(s.Admins),
		doctors:         copyMap(s.Doctors),
		patients:        copyMap(s.Patients),
		specializations: copyMap(s.Specializations),
		doctorLinks:     links,
		accounts:        copyMap(s.Accounts),
		attendances:     copyMap(s.Attendances),
		identityUsers:   copyMap(s.IdentityUsers),
		userRoles:       userRoles,
		roles:           copyMap(s.Roles),
		auditLogs:       append([]entity.AuditLog(nil), s.AuditLogs...),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Admins = snap.admins
	s.Doctors = snap.doctors
	s.Patients = snap.patients
	s.Specializations = snap.specializations
	s.DoctorLinks = snap.doctorLinks
	s.Accounts = snap.accounts
	s.Attendances = snap.attendances
	s.IdentityUsers = snap.identityUsers
	s.UserRoles = snap.userRoles
	s.Roles = snap.roles
	s.AuditLogs = snap.auditLogs
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func newID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

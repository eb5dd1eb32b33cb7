package testutil

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

type SpecializationRepository struct{ store *Store }

func NewSpecializationRepository(store *Store) repository.SpecializationRepository {
	return &SpecializationRepository{store: store}
}

func (r *SpecializationRepository) Create(ctx context.Context, db *gorm.DB, specialization *entity.Specialization) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, s := range r.store.Specializations {
		if strings.EqualFold(s.Name, specialization.Name) {
			return ErrDuplicateKey
		}
	}
	specialization.ID = newID(specialization.ID)
	specialization.CreatedAt, specialization.UpdatedAt = time.Now(), time.Now()
	r.store.Specializations[specialization.ID] = *specialization
	return nil
}

func (r *SpecializationRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Specialization, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s, ok := r.store.Specializations[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SpecializationRepository) FindByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]entity.Specialization, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var found []entity.Specialization
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		if s, ok := r.store.Specializations[id]; ok && !seen[id] {
			seen[id] = true
			found = append(found, s)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found, nil
}

func (r *SpecializationRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Specialization, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := make([]entity.Specialization, 0, len(r.store.Specializations))
	for _, s := range r.store.Specializations {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (r *SpecializationRepository) ExistsByName(ctx context.Context, db *gorm.DB, name string, excludeID *uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, s := range r.store.Specializations {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *SpecializationRepository) Update(ctx context.Context, db *gorm.DB, specialization *entity.Specialization) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	specialization.UpdatedAt = time.Now()
	r.store.Specializations[specialization.ID] = *specialization
	return nil
}

func (r *SpecializationRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.Specializations[id]; !ok {
		return 0, nil
	}
	delete(r.store.Specializations, id)
	return 1, nil
}

type DoctorSpecializationRepository struct{ store *Store }

func NewDoctorSpecializationRepository(store *Store) repository.DoctorSpecializationRepository {
	return &DoctorSpecializationRepository{store: store}
}

func (r *DoctorSpecializationRepository) FindSpecializationIDs(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(r.store.DoctorLinks[doctorID]))
	for id := range r.store.DoctorLinks[doctorID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids, nil
}

func (r *DoctorSpecializationRepository) CreateBatch(ctx context.Context, db *gorm.DB, links []entity.DoctorSpecialization) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("doctor_specialization.create"); err != nil {
		return err
	}
	for _, link := range links {
		set, ok := r.store.DoctorLinks[link.DoctorID]
		if !ok {
			set = map[uuid.UUID]struct{}{}
			r.store.DoctorLinks[link.DoctorID] = set
		}
		if _, exists := set[link.SpecializationID]; exists {
			return ErrDuplicateKey
		}
		set[link.SpecializationID] = struct{}{}
		r.store.LinkWrites = append(r.store.LinkWrites, LinkWrite{Op: "add", DoctorID: link.DoctorID, SpecializationID: link.SpecializationID})
	}
	return nil
}

func (r *DoctorSpecializationRepository) DeleteBatch(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, specializationIDs []uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, id := range specializationIDs {
		if _, ok := r.store.DoctorLinks[doctorID][id]; !ok {
			continue
		}
		delete(r.store.DoctorLinks[doctorID], id)
		r.store.LinkWrites = append(r.store.LinkWrites, LinkWrite{Op: "remove", DoctorID: doctorID, SpecializationID: id})
	}
	return nil
}

func (r *DoctorSpecializationRepository) DeleteByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id := range r.store.DoctorLinks[doctorID] {
		r.store.LinkWrites = append(r.store.LinkWrites, LinkWrite{Op: "remove", DoctorID: doctorID, SpecializationID: id})
	}
	delete(r.store.DoctorLinks, doctorID)
	return nil
}

func (r *DoctorSpecializationRepository) CountBySpecializationID(ctx context.Context, db *gorm.DB, specializationID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, set := range r.store.DoctorLinks {
		if _, ok := set[specializationID]; ok {
			count++
		}
	}
	return count, nil
}

type AccountRepository struct{ store *Store }

func NewAccountRepository(store *Store) repository.AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) Create(ctx context.Context, db *gorm.DB, account *entity.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("account.create"); err != nil {
		return err
	}
	for _, a := range r.store.Accounts {
		if a.UserID == account.UserID || a.IdentityUserID == account.IdentityUserID {
			return ErrDuplicateKey
		}
	}
	account.ID = newID(account.ID)
	account.CreatedAt = time.Now()
	r.store.Accounts[account.ID] = *account
	return nil
}

func (r *AccountRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Account, error) {
	return r.find(func(a entity.Account) bool { return a.UserID == userID }), nil
}

func (r *AccountRepository) FindByIdentityUserID(ctx context.Context, db *gorm.DB, identityUserID uuid.UUID) (*entity.Account, error) {
	return r.find(func(a entity.Account) bool { return a.IdentityUserID == identityUserID }), nil
}

func (r *AccountRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.Accounts, id)
	return nil
}

func (r *AccountRepository) find(match func(entity.Account) bool) *entity.Account {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.Accounts {
		if match(a) {
			return &a
		}
	}
	return nil
}

type AttendanceRepository struct{ store *Store }

func NewAttendanceRepository(store *Store) repository.AttendanceRepository {
	return &AttendanceRepository{store: store}
}

func (r *AttendanceRepository) Create(ctx context.Context, db *gorm.DB, attendance *entity.Attendance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	attendance.ID = newID(attendance.ID)
	attendance.CreatedAt, attendance.UpdatedAt = time.Now(), time.Now()
	r.store.Attendances[attendance.ID] = *attendance
	return nil
}

func (r *AttendanceRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a, ok := r.store.Attendances[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AttendanceRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Attendance, error) {
	return r.filter(func(a entity.Attendance) bool { return a.PatientID == patientID }), nil
}

func (r *AttendanceRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Attendance, error) {
	return r.filter(func(a entity.Attendance) bool { return a.DoctorID == doctorID }), nil
}

func (r *AttendanceRepository) Update(ctx context.Context, db *gorm.DB, attendance *entity.Attendance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	attendance.UpdatedAt = time.Now()
	r.store.Attendances[attendance.ID] = *attendance
	return nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.Attendances[id]; !ok {
		return 0, nil
	}
	delete(r.store.Attendances, id)
	return 1, nil
}

func (r *AttendanceRepository) filter(match func(entity.Attendance) bool) []entity.Attendance {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Attendance
	for _, a := range r.store.Attendances {
		if match(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DateTime.Equal(out[j].DateTime) {
			return out[i].DateTime.Before(out[j].DateTime)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

type IdentityUserRepository struct{ store *Store }

func NewIdentityUserRepository(store *Store) repository.IdentityUserRepository {
	return &IdentityUserRepository{store: store}
}

func (r *IdentityUserRepository) Create(ctx context.Context, db *gorm.DB, user *entity.IdentityUser) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("identity_user.create"); err != nil {
		return err
	}
	for _, u := range r.store.IdentityUsers {
		if u.NormalizedUserName == user.NormalizedUserName {
			return ErrDuplicateKey
		}
	}
	user.ID = newID(user.ID)
	user.CreatedAt, user.UpdatedAt = time.Now(), time.Now()
	r.store.IdentityUsers[user.ID] = *user
	return nil
}

func (r *IdentityUserRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.IdentityUser, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.IdentityUsers[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *IdentityUserRepository) FindByNormalizedUserName(ctx context.Context, db *gorm.DB, normalizedUserName string) (*entity.IdentityUser, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.IdentityUsers {
		if u.NormalizedUserName == normalizedUserName {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *IdentityUserRepository) ExistsByNormalizedEmail(ctx context.Context, db *gorm.DB, normalizedEmail string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.IdentityUsers {
		if u.NormalizedEmail == normalizedEmail || u.NormalizedUserName == normalizedEmail {
			return true, nil
		}
	}
	return false, nil
}

func (r *IdentityUserRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("identity_user.delete"); err != nil {
		return 0, err
	}
	if _, ok := r.store.IdentityUsers[id]; !ok {
		return 0, nil
	}
	delete(r.store.IdentityUsers, id)
	return 1, nil
}

func (r *IdentityUserRepository) AddRole(ctx context.Context, db *gorm.DB, userRole *entity.IdentityUserRole) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.UserRoles[userRole.UserID] = append(r.store.UserRoles[userRole.UserID], userRole.RoleID)
	return nil
}

func (r *IdentityUserRepository) FindRoleNames(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var names []string
	for _, roleID := range r.store.UserRoles[userID] {
		names = append(names, r.store.Roles[roleID].RoleName)
	}
	sort.Strings(names)
	return names, nil
}

func (r *IdentityUserRepository) DeleteRoles(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.UserRoles, userID)
	return nil
}

type RoleRepository struct{ store *Store }

func NewRoleRepository(store *Store) repository.RoleRepository {
	return &RoleRepository{store: store}
}

func (r *RoleRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Role, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, role := range r.store.Roles {
		if role.RoleName == name {
			return &role, nil
		}
	}
	return nil, nil
}

func (r *RoleRepository) Create(ctx context.Context, db *gorm.DB, role *entity.Role) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextRoleID++
	role.ID = r.store.nextRoleID
	r.store.Roles[role.ID] = *role
	return nil
}

type AuditLogRepository struct{ store *Store }

func NewAuditLogRepository(store *Store) repository.AuditLogRepository {
	return &AuditLogRepository{store: store}
}

func (r *AuditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("audit_log.create"); err != nil {
		return err
	}
	r.store.nextAuditID++
	log.ID = r.store.nextAuditID
	log.CreatedAt = time.Now()
	r.store.AuditLogs = append(r.store.AuditLogs, *log)
	return nil
}

func (r *AuditLogRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.AuditLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	logs := make([]entity.AuditLog, len(r.store.AuditLogs))
	for i := range r.store.AuditLogs {
		logs[len(logs)-1-i] = r.store.AuditLogs[i]
	}
	return logs, nil
}

func (r *AuditLogRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, l := range r.store.AuditLogs {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, nil
}

package testutil

import (
	"context"
	"sort"
	"strings"
	"time"

	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func byName(a, b entity.Person) bool {
	if a.LastName != b.LastName {
		return a.LastName < b.LastName
	}
	return a.FirstName < b.FirstName
}

func emailTaken(p entity.Person, id uuid.UUID, email string, excludeID *uuid.UUID) bool {
	if excludeID != nil && id == *excludeID {
		return false
	}
	return strings.EqualFold(p.Email, email)
}

type AdminRepository struct{ store *Store }

func NewAdminRepository(store *Store) repository.AdminRepository {
	return &AdminRepository{store: store}
}

func (r *AdminRepository) Create(ctx context.Context, db *gorm.DB, admin *entity.Admin) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("admin.create"); err != nil {
		return err
	}
	admin.ID = newID(admin.ID)
	admin.CreatedAt, admin.UpdatedAt = time.Now(), time.Now()
	r.store.Admins[admin.ID] = *admin
	return nil
}

func (r *AdminRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Admin, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	admin, ok := r.store.Admins[id]
	if !ok {
		return nil, nil
	}
	return &admin, nil
}

func (r *AdminRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Admin, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	admins := make([]entity.Admin, 0, len(r.store.Admins))
	for _, a := range r.store.Admins {
		admins = append(admins, a)
	}
	sort.Slice(admins, func(i, j int) bool { return byName(admins[i].Person, admins[j].Person) })
	return admins, nil
}

func (r *AdminRepository) ExistsByEmail(ctx context.Context, db *gorm.DB, email string, excludeID *uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, a := range r.store.Admins {
		if emailTaken(a.Person, id, email, excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *AdminRepository) Update(ctx context.Context, db *gorm.DB, admin *entity.Admin) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	admin.UpdatedAt = time.Now()
	r.store.Admins[admin.ID] = *admin
	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.Admins[id]; !ok {
		return 0, nil
	}
	delete(r.store.Admins, id)
	return 1, nil
}

type DoctorRepository struct{ store *Store }

func NewDoctorRepository(store *Store) repository.DoctorRepository {
	return &DoctorRepository{store: store}
}

func (r *DoctorRepository) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("doctor.create"); err != nil {
		return err
	}
	doctor.ID = newID(doctor.ID)
	doctor.CreatedAt, doctor.UpdatedAt = time.Now(), time.Now()
	r.store.Doctors[doctor.ID] = *doctor
	return nil
}

func (r *DoctorRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	doctor, ok := r.store.Doctors[id]
	if !ok {
		return nil, nil
	}
	return &doctor, nil
}

func (r *DoctorRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	doctors := make([]entity.Doctor, 0, len(r.store.Doctors))
	for _, d := range r.store.Doctors {
		doctors = append(doctors, d)
	}
	sort.Slice(doctors, func(i, j int) bool { return byName(doctors[i].Person, doctors[j].Person) })
	return doctors, nil
}

func (r *DoctorRepository) ExistsByEmail(ctx context.Context, db *gorm.DB, email string, excludeID *uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, d := range r.store.Doctors {
		if emailTaken(d.Person, id, email, excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *DoctorRepository) Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	doctor.UpdatedAt = time.Now()
	r.store.Doctors[doctor.ID] = *doctor
	return nil
}

func (r *DoctorRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.Doctors[id]; !ok {
		return 0, nil
	}
	delete(r.store.Doctors, id)
	return 1, nil
}

type PatientRepository struct{ store *Store }

func NewPatientRepository(store *Store) repository.PatientRepository {
	return &PatientRepository{store: store}
}

func (r *PatientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("patient.create"); err != nil {
		return err
	}
	patient.ID = newID(patient.ID)
	patient.CreatedAt, patient.UpdatedAt = time.Now(), time.Now()
	r.store.Patients[patient.ID] = *patient
	return nil
}

func (r *PatientRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	patient, ok := r.store.Patients[id]
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

func (r *PatientRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	patients := make([]entity.Patient, 0, len(r.store.Patients))
	for _, p := range r.store.Patients {
		patients = append(patients, p)
	}
	sort.Slice(patients, func(i, j int) bool { return byName(patients[i].Person, patients[j].Person) })
	return patients, nil
}

func (r *PatientRepository) ExistsByEmail(ctx context.Context, db *gorm.DB, email string, excludeID *uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, p := range r.store.Patients {
		if emailTaken(p.Person, id, email, excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *PatientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	patient.UpdatedAt = time.Now()
	r.store.Patients[patient.ID] = *patient
	return nil
}

func (r *PatientRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.Patients[id]; !ok {
		return 0, nil
	}
	delete(r.store.Patients, id)
	return 1, nil
}

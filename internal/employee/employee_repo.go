package employee

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QueryFilter struct {
	EmployeeType string
	Status       string
	Search       string
	Offset       int
	Limit        int
}

type RecentPayrollRow struct {
	ID          uuid.UUID
	Month       int
	Year        int
	GrossSalary int64
	NetSalary   int64
	Status      string
	PaidAt      *time.Time
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	FindAll(ctx context.Context, filter QueryFilter) ([]Employee, error)
	Count(ctx context.Context, filter QueryFilter) (int64, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	RecentPayrolls(ctx context.Context, employeeID string, limit int) ([]RecentPayrollRow, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func filterScope(f QueryFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.EmployeeType != "" {
			db = db.Where("employee_type = ?", f.EmployeeType)
		}
		if f.Status != "" {
			db = db.Where("status = ?", f.Status)
		}
		if f.Search != "" {
			// Free-text search matches if ANY of the three fields contains
			// the term.
			term := "%" + f.Search + "%"
			db = db.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", term, term, term)
		}
		return db
	}
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindAll(ctx context.Context, filter QueryFilter) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Scopes(filterScope(filter)).
		Preload("TeacherProfile").
		Preload("OfficerProfile").
		Preload("StaffProfile").
		Order("created_at ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&emps).Error
	return emps, err
}

func (r *repository) Count(ctx context.Context, filter QueryFilter) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(filterScope(filter)).
		Count(&count).Error
	return count, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Preload("TeacherProfile").
		Preload("OfficerProfile").
		Preload("StaffProfile").
		First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) RecentPayrolls(ctx context.Context, employeeID string, limit int) ([]RecentPayrollRow, error) {
	var rows []RecentPayrollRow
	err := r.db.WithContext(ctx).
		Table("payrolls").
		Select("id, month, year, gross_salary, net_salary, status, paid_at").
		Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(emp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	// Profiles and payrolls go with it through ON DELETE CASCADE.
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

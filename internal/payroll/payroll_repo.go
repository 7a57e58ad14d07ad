package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/employee"

	"gorm.io/gorm"
)

type QueryFilter struct {
	Month      *int
	Year       *int
	Status     string
	EmployeeID string
	Offset     int
	Limit      int
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payroll) error
	FindAll(ctx context.Context, filter QueryFilter) ([]Payroll, error)
	Count(ctx context.Context, filter QueryFilter) (int64, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)
	Update(ctx context.Context, p *Payroll) error
	BulkMarkPaid(ctx context.Context, ids []string, paidAt time.Time) (int64, error)
	Delete(ctx context.Context, id string) error
	FindEligibleEmployees(ctx context.Context, ids []string) ([]PayrollEmployee, error)
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
		if f.Month != nil {
			db = db.Where("month = ?", *f.Month)
		}
		if f.Year != nil {
			db = db.Where("year = ?", *f.Year)
		}
		if f.Status != "" {
			db = db.Where("status = ?", f.Status)
		}
		if f.EmployeeID != "" {
			db = db.Where("employee_id = ?", f.EmployeeID)
		}
		return db
	}
}

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, filter QueryFilter) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Scopes(filterScope(filter)).
		Preload("Employee").
		Order("year DESC, month DESC, created_at ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) Count(ctx context.Context, filter QueryFilter) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Scopes(filterScope(filter)).
		Count(&count).Error
	return count, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// BulkMarkPaid flips only the PENDING rows among ids to PAID with a shared
// timestamp. Missing or already-paid ids simply do not count.
func (r *repository) BulkMarkPaid(ctx context.Context, ids []string, paidAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("id IN ?", ids).
		Where("status = ?", StatusPending).
		Updates(map[string]any{
			"status":  StatusPaid,
			"paid_at": paidAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Payroll{}, "id = ?", id).Error
}

func (r *repository) FindEligibleEmployees(ctx context.Context, ids []string) ([]PayrollEmployee, error) {
	var emps []PayrollEmployee
	db := r.db.WithContext(ctx).
		Where("status = ?", employee.StatusActive)
	if len(ids) > 0 {
		db = db.Where("id IN ?", ids)
	}
	err := db.Order("created_at ASC").Find(&emps).Error
	return emps, err
}

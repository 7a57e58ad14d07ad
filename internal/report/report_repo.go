package report

import (
	"context"

	"gorm.io/gorm"
)

type GroupTotals struct {
	Key             string
	Count           int64
	TotalBasic      int64
	TotalAllowances int64
	TotalDeductions int64
	TotalGross      int64
	TotalNet        int64
}

type MonthTotals struct {
	Month           int
	Count           int64
	TotalBasic      int64
	TotalAllowances int64
	TotalDeductions int64
	TotalGross      int64
	TotalNet        int64
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	SummarizeByEmployeeType(ctx context.Context) ([]GroupTotals, error)
	SummarizeByDepartment(ctx context.Context) ([]GroupTotals, error)
	SummarizeByFaculty(ctx context.Context) ([]GroupTotals, error)
	SummarizeByDesignation(ctx context.Context) ([]GroupTotals, error)
	SummarizeByMonth(ctx context.Context, year int) ([]MonthTotals, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Grouping and summation run inside postgres; the service layer only
// assembles the result.
const employeeSums = `
	COUNT(*) AS count,
	SUM(basic_salary) AS total_basic,
	SUM(house_rent + medical + transport + education + special) AS total_allowances,
	SUM(tax + provident_fund + insurance + loan + other_deduction) AS total_deductions,
	SUM(basic_salary + house_rent + medical + transport + education + special) AS total_gross,
	SUM(basic_salary + house_rent + medical + transport + education + special
		- (tax + provident_fund + insurance + loan + other_deduction)) AS total_net`

func (r *repository) SummarizeByEmployeeType(ctx context.Context) ([]GroupTotals, error) {
	var rows []GroupTotals
	// MIN(created_at) keeps groups in first-encountered order.
	err := r.db.WithContext(ctx).Raw(`
SELECT employee_type AS key,` + employeeSums + `
FROM employees
GROUP BY employee_type
ORDER BY MIN(created_at)
`).Scan(&rows).Error
	return rows, err
}

func (r *repository) SummarizeByDepartment(ctx context.Context) ([]GroupTotals, error) {
	var rows []GroupTotals
	err := r.db.WithContext(ctx).Raw(`
SELECT tp.department AS key,` + employeeSums + `
FROM employees e
JOIN teacher_profiles tp ON tp.employee_id = e.id
GROUP BY tp.department
ORDER BY MIN(e.created_at)
`).Scan(&rows).Error
	return rows, err
}

func (r *repository) SummarizeByFaculty(ctx context.Context) ([]GroupTotals, error) {
	var rows []GroupTotals
	err := r.db.WithContext(ctx).Raw(`
SELECT tp.faculty AS key,` + employeeSums + `
FROM employees e
JOIN teacher_profiles tp ON tp.employee_id = e.id
GROUP BY tp.faculty
ORDER BY MIN(e.created_at)
`).Scan(&rows).Error
	return rows, err
}

func (r *repository) SummarizeByDesignation(ctx context.Context) ([]GroupTotals, error) {
	var rows []GroupTotals
	err := r.db.WithContext(ctx).Raw(`
SELECT designation AS key,` + employeeSums + `
FROM employees
GROUP BY designation
ORDER BY MIN(created_at)
`).Scan(&rows).Error
	return rows, err
}

func (r *repository) SummarizeByMonth(ctx context.Context, year int) ([]MonthTotals, error) {
	var rows []MonthTotals
	err := r.db.WithContext(ctx).Raw(`
SELECT
	month,
	COUNT(*) AS count,
	SUM(basic_salary) AS total_basic,
	SUM(house_rent + medical + transport + education + special) AS total_allowances,
	SUM(tax + provident_fund + insurance + loan + other_deduction) AS total_deductions,
	SUM(gross_salary) AS total_gross,
	SUM(net_salary) AS total_net
FROM payrolls
WHERE year = ?
GROUP BY month
ORDER BY month
`, year).Scan(&rows).Error
	return rows, err
}

package payroll

import (
	"time"

	"go-payroll/internal/employee"

	"github.com/google/uuid"
)

const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
)

// Payroll is a point-in-time snapshot of one employee's compensation for one
// calendar period. Snapshot fields are copied at processing time and never
// recomputed from the employee record.
type Payroll struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID        `gorm:"type:uuid;not null;index:idx_employee_period,unique"`
	Employee   *PayrollEmployee `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`

	Month int `gorm:"not null;index:idx_employee_period,unique"`
	Year  int `gorm:"not null;index:idx_employee_period,unique"`

	Compensation employee.Compensation `gorm:"embedded"`
	GrossSalary  int64                 `gorm:"type:bigint;not null"`
	NetSalary    int64                 `gorm:"type:bigint;not null"`

	Status string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaidAt *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollEmployee is a read model over the employees table carrying just what
// payroll processing needs.
type PayrollEmployee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Status       string
	Compensation employee.Compensation `gorm:"embedded"`
}

func (PayrollEmployee) TableName() string {
	return "employees"
}

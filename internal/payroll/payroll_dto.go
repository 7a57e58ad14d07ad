package payroll

import "go-payroll/internal/employee"

const SkipReasonAlreadyProcessed = "already processed"

type ProcessPayrollRequest struct {
	Month       int      `json:"month" binding:"required,gte=1,lte=12"`
	Year        int      `json:"year" binding:"required,gte=1900"`
	EmployeeIDs []string `json:"employee_ids" binding:"omitempty,dive,uuid"`
}

type ProcessedEmployeePayload struct {
	EmployeeID  string `json:"employee_id"`
	PayrollID   string `json:"payroll_id"`
	GrossSalary int64  `json:"gross_salary"`
	NetSalary   int64  `json:"net_salary"`
}

type SkippedEmployeePayload struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

// ProcessPayrollResponse partitions the run per employee; there is no single
// pass/fail verdict for the whole batch.
type ProcessPayrollResponse struct {
	Month     int                        `json:"month"`
	Year      int                        `json:"year"`
	Processed []ProcessedEmployeePayload `json:"processed"`
	Skipped   []SkippedEmployeePayload   `json:"skipped"`
}

type BulkMarkPaidRequest struct {
	PayrollIDs []string `json:"payroll_ids" binding:"required,min=1,dive,uuid"`
}

type BulkMarkPaidResponse struct {
	PaidCount int64  `json:"paid_count"`
	PaidAt    string `json:"paid_at"`
}

type GetPayrollsFilterRequest struct {
	Month      *int   `form:"month" binding:"omitempty,gte=1,lte=12"`
	Year       *int   `form:"year" binding:"omitempty,gte=1900"`
	Status     string `form:"status" binding:"omitempty,oneof=PENDING PAID"`
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,gte=1"`
	Limit      int    `form:"limit" binding:"omitempty,gte=1"`
}

type PayrollResponse struct {
	ID           string                     `json:"id"`
	EmployeeID   string                     `json:"employee_id"`
	EmployeeName string                     `json:"employee_name,omitempty"`
	Month        int                        `json:"month"`
	Year         int                        `json:"year"`
	BasicSalary  int64                      `json:"basic_salary"`
	Allowances   employee.AllowancesPayload `json:"allowances"`
	Deductions   employee.DeductionsPayload `json:"deductions"`
	GrossSalary  int64                      `json:"gross_salary"`
	NetSalary    int64                      `json:"net_salary"`
	Status       string                     `json:"status"`
	PaidAt       *string                    `json:"paid_at,omitempty"`
}

package report

type GroupSummaryPayload struct {
	Key             string `json:"key"`
	Count           int64  `json:"count"`
	TotalBasic      int64  `json:"total_basic"`
	TotalAllowances int64  `json:"total_allowances"`
	TotalDeductions int64  `json:"total_deductions"`
	TotalGross      int64  `json:"total_gross"`
	TotalNet        int64  `json:"total_net"`
}

type EmployeeTypeReportResponse struct {
	Groups []GroupSummaryPayload `json:"groups"`
}

type DepartmentReportResponse struct {
	Groups []GroupSummaryPayload `json:"groups"`
}

type FacultyReportResponse struct {
	Groups []GroupSummaryPayload `json:"groups"`
}

type DesignationSummaryPayload struct {
	GroupSummaryPayload
	AverageNet int64 `json:"average_net"`
}

type DesignationReportResponse struct {
	Groups []DesignationSummaryPayload `json:"groups"`
}

type MonthlySummaryPayload struct {
	Month           int   `json:"month"`
	Count           int64 `json:"count"`
	TotalBasic      int64 `json:"total_basic"`
	TotalAllowances int64 `json:"total_allowances"`
	TotalDeductions int64 `json:"total_deductions"`
	TotalGross      int64 `json:"total_gross"`
	TotalNet        int64 `json:"total_net"`
}

// MonthlyReportResponse always carries exactly 12 entries, zero-filled for
// months without records.
type MonthlyReportResponse struct {
	Year   int                     `json:"year"`
	Months []MonthlySummaryPayload `json:"months"`
}

type MonthlyReportFilterRequest struct {
	Year int `form:"year" binding:"required,gte=1900"`
}

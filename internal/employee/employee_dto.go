package employee

type AllowancesInput struct {
	HouseRent int64 `json:"house_rent" binding:"gte=0"`
	Medical   int64 `json:"medical" binding:"gte=0"`
	Transport int64 `json:"transport" binding:"gte=0"`
	Education int64 `json:"education" binding:"gte=0"`
	Special   int64 `json:"special" binding:"gte=0"`
}

type DeductionsInput struct {
	Tax           int64 `json:"tax" binding:"gte=0"`
	ProvidentFund int64 `json:"provident_fund" binding:"gte=0"`
	Insurance     int64 `json:"insurance" binding:"gte=0"`
	Loan          int64 `json:"loan" binding:"gte=0"`
	Other         int64 `json:"other" binding:"gte=0"`
}

type TeacherProfileInput struct {
	Faculty          string  `json:"faculty" binding:"required"`
	Department       string  `json:"department" binding:"required"`
	ResearchArea     *string `json:"research_area"`
	PublicationCount int     `json:"publication_count" binding:"gte=0"`
}

type OfficerProfileInput struct {
	Office           string   `json:"office" binding:"required"`
	Responsibilities []string `json:"responsibilities"`
}

type StaffProfileInput struct {
	Section string `json:"section" binding:"required"`
	Shift   string `json:"shift" binding:"required,oneof=MORNING EVENING NIGHT"`
}

type CreateEmployeeRequest struct {
	Name         string          `json:"name" binding:"required"`
	Age          int             `json:"age" binding:"required,gt=0"`
	Phone        string          `json:"phone" binding:"required"`
	Email        string          `json:"email" binding:"required,email"`
	Designation  string          `json:"designation" binding:"required"`
	EmployeeType string          `json:"employee_type" binding:"required,oneof=TEACHER OFFICER STAFF"`
	JoiningDate  string          `json:"joining_date" binding:"required"`
	Status       string          `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	BasicSalary  int64           `json:"basic_salary" binding:"gte=0"`
	Allowances   AllowancesInput `json:"allowances"`
	Deductions   DeductionsInput `json:"deductions"`

	Teacher *TeacherProfileInput `json:"teacher"`
	Officer *OfficerProfileInput `json:"officer"`
	Staff   *StaffProfileInput   `json:"staff"`
}

// UpdateEmployeeRequest carries no employee_type: the type is fixed at
// creation, and a profile payload is applied only when it matches it.
type UpdateEmployeeRequest struct {
	Name        string          `json:"name" binding:"required"`
	Age         int             `json:"age" binding:"required,gt=0"`
	Phone       string          `json:"phone" binding:"required"`
	Email       string          `json:"email" binding:"required,email"`
	Designation string          `json:"designation" binding:"required"`
	JoiningDate string          `json:"joining_date" binding:"required"`
	Status      string          `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
	BasicSalary int64           `json:"basic_salary" binding:"gte=0"`
	Allowances  AllowancesInput `json:"allowances"`
	Deductions  DeductionsInput `json:"deductions"`

	Teacher *TeacherProfileInput `json:"teacher"`
	Officer *OfficerProfileInput `json:"officer"`
	Staff   *StaffProfileInput   `json:"staff"`
}

type ListEmployeesFilterRequest struct {
	EmployeeType string `form:"employee_type" binding:"omitempty,oneof=TEACHER OFFICER STAFF"`
	Status       string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Search       string `form:"search"`
	Page         int    `form:"page" binding:"omitempty,gte=1"`
	Limit        int    `form:"limit" binding:"omitempty,gte=1"`
}

type TeacherProfilePayload struct {
	Faculty          string  `json:"faculty"`
	Department       string  `json:"department"`
	ResearchArea     *string `json:"research_area,omitempty"`
	PublicationCount int     `json:"publication_count"`
}

type OfficerProfilePayload struct {
	Office           string   `json:"office"`
	Responsibilities []string `json:"responsibilities"`
}

type StaffProfilePayload struct {
	Section string `json:"section"`
	Shift   string `json:"shift"`
}

type AllowancesPayload struct {
	HouseRent int64 `json:"house_rent"`
	Medical   int64 `json:"medical"`
	Transport int64 `json:"transport"`
	Education int64 `json:"education"`
	Special   int64 `json:"special"`
}

type DeductionsPayload struct {
	Tax           int64 `json:"tax"`
	ProvidentFund int64 `json:"provident_fund"`
	Insurance     int64 `json:"insurance"`
	Loan          int64 `json:"loan"`
	Other         int64 `json:"other"`
}

type EmployeeResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Age          int               `json:"age"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	Designation  string            `json:"designation"`
	EmployeeType string            `json:"employee_type"`
	JoiningDate  string            `json:"joining_date"`
	Status       string            `json:"status"`
	BasicSalary  int64             `json:"basic_salary"`
	Allowances   AllowancesPayload `json:"allowances"`
	Deductions   DeductionsPayload `json:"deductions"`
	GrossSalary  int64             `json:"gross_salary"`
	NetSalary    int64             `json:"net_salary"`

	Teacher *TeacherProfilePayload `json:"teacher,omitempty"`
	Officer *OfficerProfilePayload `json:"officer,omitempty"`
	Staff   *StaffProfilePayload   `json:"staff,omitempty"`
}

type RecentPayrollPayload struct {
	ID          string  `json:"id"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	GrossSalary int64   `json:"gross_salary"`
	NetSalary   int64   `json:"net_salary"`
	Status      string  `json:"status"`
	PaidAt      *string `json:"paid_at,omitempty"`
}

type EmployeeDetailResponse struct {
	EmployeeResponse
	RecentPayrolls []RecentPayrollPayload `json:"recent_payrolls"`
}

package employee

// Compensation holds the salary structure shared by the employee record and
// the payroll snapshot. Amounts are stored in minor units to avoid floating
// point error.
type Compensation struct {
	BasicSalary int64 `gorm:"type:bigint;not null;default:0"`

	// Allowances
	HouseRent int64 `gorm:"type:bigint;not null;default:0"`
	Medical   int64 `gorm:"type:bigint;not null;default:0"`
	Transport int64 `gorm:"type:bigint;not null;default:0"`
	Education int64 `gorm:"type:bigint;not null;default:0"`
	Special   int64 `gorm:"type:bigint;not null;default:0"`

	// Deductions
	Tax            int64 `gorm:"type:bigint;not null;default:0"`
	ProvidentFund  int64 `gorm:"type:bigint;not null;default:0"`
	Insurance      int64 `gorm:"type:bigint;not null;default:0"`
	Loan           int64 `gorm:"type:bigint;not null;default:0"`
	OtherDeduction int64 `gorm:"type:bigint;not null;default:0"`
}

// Gross is the basic salary plus all allowances.
func (c Compensation) Gross() int64 {
	return c.BasicSalary + c.HouseRent + c.Medical + c.Transport + c.Education + c.Special
}

// Net is the gross salary minus all deductions. Deductions exceeding gross
// (e.g. loan repayment) produce a negative net; no floor is applied.
func (c Compensation) Net() int64 {
	return c.Gross() - (c.Tax + c.ProvidentFund + c.Insurance + c.Loan + c.OtherDeduction)
}

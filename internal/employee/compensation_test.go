package employee_test

import (
	"testing"

	"go-payroll/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestCompensation_GrossAndNet(t *testing.T) {
	c := employee.Compensation{
		BasicSalary: 80000,
		HouseRent:   20000,
		Medical:     5000,
		Transport:   3000,
		Education:   2000,
		Special:     5000,

		Tax:            12000,
		ProvidentFund:  8000,
		Insurance:      2000,
		Loan:           0,
		OtherDeduction: 0,
	}

	assert.Equal(t, int64(115000), c.Gross())
	assert.Equal(t, int64(93000), c.Net())
}

func TestCompensation_ZeroValue(t *testing.T) {
	var c employee.Compensation

	assert.Equal(t, int64(0), c.Gross())
	assert.Equal(t, int64(0), c.Net())
}

func TestCompensation_NegativeNetAllowed(t *testing.T) {
	c := employee.Compensation{
		BasicSalary: 10000,
		Loan:        25000,
	}

	assert.Equal(t, int64(10000), c.Gross())
	assert.Equal(t, int64(-15000), c.Net())
}

func TestCompensation_DeductionsDoNotAffectGross(t *testing.T) {
	base := employee.Compensation{
		BasicSalary: 50000,
		HouseRent:   10000,
	}
	withDeductions := base
	withDeductions.Tax = 7000
	withDeductions.ProvidentFund = 3000

	assert.Equal(t, base.Gross(), withDeductions.Gross())
	assert.Equal(t, base.Net()-10000, withDeductions.Net())
}

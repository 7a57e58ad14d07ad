package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	withTxFn         func(tx *sql.Tx) employee.Repository
	createFn         func(ctx context.Context, emp *employee.Employee) error
	findAllFn        func(ctx context.Context, filter employee.QueryFilter) ([]employee.Employee, error)
	countFn          func(ctx context.Context, filter employee.QueryFilter) (int64, error)
	findByIDFn       func(ctx context.Context, id string) (*employee.Employee, error)
	recentPayrollsFn func(ctx context.Context, employeeID string, limit int) ([]employee.RecentPayrollRow, error)
	updateFn         func(ctx context.Context, emp *employee.Employee) error
	deleteFn         func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context, filter employee.QueryFilter) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Count(ctx context.Context, filter employee.QueryFilter) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx, filter)
	}
	return 0, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) RecentPayrolls(ctx context.Context, employeeID string, limit int) ([]employee.RecentPayrollRow, error) {
	if f.recentPayrollsFn != nil {
		return f.recentPayrollsFn(ctx, employeeID, limit)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeOutboxRepository struct {
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	svc := employee.NewService(db, repo)

	return &employeeServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:         "Ayesha Rahman",
		Age:          41,
		Phone:        "+8801700000001",
		Email:        "ayesha.rahman@example.edu",
		Designation:  "Professor",
		EmployeeType: employee.TypeTeacher,
		JoiningDate:  "2015-03-01",
		BasicSalary:  80000,
		Allowances: employee.AllowancesInput{
			HouseRent: 20000,
			Medical:   5000,
			Transport: 3000,
			Education: 2000,
			Special:   5000,
		},
		Deductions: employee.DeductionsInput{
			Tax:           12000,
			ProvidentFund: 8000,
			Insurance:     2000,
		},
		Teacher: &employee.TeacherProfileInput{
			Faculty:          "Science",
			Department:       "Physics",
			PublicationCount: 12,
		},
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.createFn = func(ctx context.Context, emp *employee.Employee) error {
		assert.Equal(t, employee.TypeTeacher, emp.EmployeeType)
		assert.Equal(t, employee.StatusActive, emp.Status)
		assert.NotNil(t, emp.TeacherProfile)
		assert.Equal(t, emp.ID, emp.TeacherProfile.EmployeeID)
		return nil
	}

	resp, err := deps.service.Create(ctx, validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(115000), resp.GrossSalary)
	assert.Equal(t, int64(93000), resp.NetSalary)
	assert.Equal(t, "2015-03-01", resp.JoiningDate)
	if assert.NotNil(t, resp.Teacher) {
		assert.Equal(t, "Physics", resp.Teacher.Department)
	}
	assert.Nil(t, resp.Officer)
	assert.Nil(t, resp.Staff)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_ProfileRequired(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	req := validCreateRequest()
	req.Teacher = nil

	_, err := deps.service.Create(ctx, req)

	assert.ErrorIs(t, err, employeeerrors.ErrProfileRequired)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_ProfileTypeMismatch(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	req := validCreateRequest()
	req.Teacher = nil
	req.Staff = &employee.StaffProfileInput{Section: "Transport", Shift: employee.ShiftMorning}

	_, err := deps.service.Create(ctx, req)

	assert.ErrorIs(t, err, employeeerrors.ErrProfileTypeMismatch)
}

func TestEmployeeService_Create_MultipleProfiles(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	req := validCreateRequest()
	req.Officer = &employee.OfficerProfileInput{Office: "Registrar"}

	_, err := deps.service.Create(ctx, req)

	assert.ErrorIs(t, err, employeeerrors.ErrProfileRequired)
}

func TestEmployeeService_Create_InvalidJoiningDate(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	req := validCreateRequest()
	req.JoiningDate = "03/01/2015"

	_, err := deps.service.Create(ctx, req)

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoiningDate)
}

func TestEmployeeService_Create_WritesLifecycleEvent(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeEmployeeRepository{}
	outboxCalled := false
	outbox := &fakeOutboxRepository{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			outboxCalled = true
			assert.Equal(t, events.EmployeeLifecycleTopic, event.Topic)
			assert.Equal(t, events.EmployeeCreated, event.EventType)
			assert.Equal(t, "employee", event.AggregateType)

			var payload events.EmployeeLifecycleEvent
			assert.NoError(t, json.Unmarshal(event.Payload, &payload))
			assert.Equal(t, employee.TypeTeacher, payload.EmployeeType)
			return nil
		},
	}
	svc := employee.NewServiceWithOutbox(db, repo, outbox)

	expectTx(t, sqlMock, true)
	_, err = svc.Create(ctx, validCreateRequest())

	assert.NoError(t, err)
	assert.True(t, outboxCalled)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_GetAll_Pagination(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.repo.findAllFn = func(ctx context.Context, filter employee.QueryFilter) ([]employee.Employee, error) {
		assert.Equal(t, employee.TypeStaff, filter.EmployeeType)
		assert.Equal(t, "rahman", filter.Search)
		assert.Equal(t, 40, filter.Offset)
		assert.Equal(t, 20, filter.Limit)
		return []employee.Employee{
			{ID: uuid.New(), Name: "A", EmployeeType: employee.TypeStaff, JoiningDate: time.Now()},
			{ID: uuid.New(), Name: "B", EmployeeType: employee.TypeStaff, JoiningDate: time.Now()},
		}, nil
	}
	deps.repo.countFn = func(ctx context.Context, filter employee.QueryFilter) (int64, error) {
		return 45, nil
	}

	resp, total, err := deps.service.GetAll(ctx, employee.ListEmployeesFilterRequest{
		EmployeeType: employee.TypeStaff,
		Search:       "rahman",
		Page:         3,
		Limit:        20,
	})

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, int64(45), total)
}

func TestEmployeeService_GetAll_Defaults(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.repo.findAllFn = func(ctx context.Context, filter employee.QueryFilter) ([]employee.Employee, error) {
		assert.Equal(t, 0, filter.Offset)
		assert.Equal(t, 10, filter.Limit)
		return nil, nil
	}

	_, _, err := deps.service.GetAll(ctx, employee.ListEmployeesFilterRequest{})

	assert.NoError(t, err)
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GetByID(ctx, employeeID.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("success with recent payrolls", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		paidAt := time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{
				ID:           employeeID,
				Name:         "Karim Uddin",
				EmployeeType: employee.TypeOfficer,
				JoiningDate:  time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
				Status:       employee.StatusActive,
				OfficerProfile: &employee.OfficerProfile{
					Office:           "Accounts",
					Responsibilities: pq.StringArray{"budgeting", "audit"},
				},
			}, nil
		}
		deps.repo.recentPayrollsFn = func(ctx context.Context, id string, limit int) ([]employee.RecentPayrollRow, error) {
			assert.Equal(t, employeeID.String(), id)
			assert.Equal(t, 12, limit)
			return []employee.RecentPayrollRow{
				{ID: uuid.New(), Month: 2, Year: 2026, GrossSalary: 50000, NetSalary: 42000, Status: "PAID", PaidAt: &paidAt},
				{ID: uuid.New(), Month: 1, Year: 2026, GrossSalary: 50000, NetSalary: 42000, Status: "PENDING"},
			}, nil
		}

		resp, err := deps.service.GetByID(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.Equal(t, "Karim Uddin", resp.Name)
		if assert.NotNil(t, resp.Officer) {
			assert.Equal(t, []string{"budgeting", "audit"}, resp.Officer.Responsibilities)
		}
		assert.Len(t, resp.RecentPayrolls, 2)
		if assert.NotNil(t, resp.RecentPayrolls[0].PaidAt) {
			assert.Equal(t, "2026-02-05T10:00:00Z", *resp.RecentPayrolls[0].PaidAt)
		}
		assert.Nil(t, resp.RecentPayrolls[1].PaidAt)
	})
}

func TestEmployeeService_Update_ProfileTypeMismatch(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return &employee.Employee{
			ID:           employeeID,
			EmployeeType: employee.TypeTeacher,
			TeacherProfile: &employee.TeacherProfile{
				Faculty:    "Science",
				Department: "Physics",
			},
		}, nil
	}

	_, err := deps.service.Update(ctx, employeeID.String(), employee.UpdateEmployeeRequest{
		Name:        "Ayesha Rahman",
		Age:         42,
		Phone:       "+8801700000001",
		Email:       "ayesha.rahman@example.edu",
		Designation: "Professor",
		JoiningDate: "2015-03-01",
		Status:      employee.StatusActive,
		Officer:     &employee.OfficerProfileInput{Office: "Registrar"},
	})

	assert.ErrorIs(t, err, employeeerrors.ErrProfileTypeMismatch)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return &employee.Employee{
			ID:           employeeID,
			EmployeeType: employee.TypeTeacher,
			TeacherProfile: &employee.TeacherProfile{
				Faculty:    "Science",
				Department: "Physics",
			},
		}, nil
	}
	deps.repo.updateFn = func(ctx context.Context, emp *employee.Employee) error {
		assert.Equal(t, "Chemistry", emp.TeacherProfile.Department)
		assert.Equal(t, int64(90000), emp.Compensation.BasicSalary)
		return nil
	}

	resp, err := deps.service.Update(ctx, employeeID.String(), employee.UpdateEmployeeRequest{
		Name:        "Ayesha Rahman",
		Age:         42,
		Phone:       "+8801700000001",
		Email:       "ayesha.rahman@example.edu",
		Designation: "Professor",
		JoiningDate: "2015-03-01",
		Status:      employee.StatusActive,
		BasicSalary: 90000,
		Teacher: &employee.TeacherProfileInput{
			Faculty:    "Science",
			Department: "Chemistry",
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, employee.TypeTeacher, resp.EmployeeType)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		err := deps.service.Delete(ctx, "nope")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		err := deps.service.Delete(ctx, employeeID.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: employeeID, EmployeeType: employee.TypeStaff}, nil
		}
		deleted := false
		deps.repo.deleteFn = func(ctx context.Context, id string) error {
			deleted = true
			assert.Equal(t, employeeID.String(), id)
			return nil
		}

		err := deps.service.Delete(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter ListEmployeesFilterRequest) ([]EmployeeResponse, int64, error)
	GetByID(ctx context.Context, id string) (EmployeeDetailResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outbox: outbox}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	joiningDate, err := parseDate(req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	emp := &Employee{
		ID:           uuid.New(),
		Name:         req.Name,
		Age:          req.Age,
		Phone:        req.Phone,
		Email:        req.Email,
		Designation:  req.Designation,
		EmployeeType: req.EmployeeType,
		JoiningDate:  joiningDate,
		Status:       status,
		Compensation: compensationFromInput(req.BasicSalary, req.Allowances, req.Deductions),
	}

	if err := attachProfile(emp, req.Teacher, req.Officer, req.Staff); err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.writeLifecycleEvent(ctx, tx, events.EmployeeCreated, emp); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(
	ctx context.Context,
	filter ListEmployeesFilterRequest,
) ([]EmployeeResponse, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	qf := QueryFilter{
		EmployeeType: filter.EmployeeType,
		Status:       filter.Status,
		Search:       filter.Search,
		Offset:       (page - 1) * limit,
		Limit:        limit,
	}

	emps, err := s.repo.FindAll(ctx, qf)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}

	// Count runs over the same predicate without pagination.
	total, err := s.repo.Count(ctx, qf)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, len(emps))
	for i, emp := range emps {
		resp[i] = mapToResponse(emp)
	}
	return resp, total, nil
}

func (s *service) GetByID(
	ctx context.Context,
	id string,
) (EmployeeDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeDetailResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}

	rows, err := s.repo.RecentPayrolls(ctx, id, 12)
	if err != nil {
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}

	detail := EmployeeDetailResponse{
		EmployeeResponse: mapToResponse(*emp),
		RecentPayrolls:   make([]RecentPayrollPayload, len(rows)),
	}
	for i, row := range rows {
		detail.RecentPayrolls[i] = RecentPayrollPayload{
			ID:          row.ID.String(),
			Month:       row.Month,
			Year:        row.Year,
			GrossSalary: row.GrossSalary,
			NetSalary:   row.NetSalary,
			Status:      row.Status,
		}
		if row.PaidAt != nil {
			v := row.PaidAt.Format(time.RFC3339)
			detail.RecentPayrolls[i].PaidAt = &v
		}
	}
	return detail, nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	joiningDate, err := parseDate(req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	emp.Name = req.Name
	emp.Age = req.Age
	emp.Phone = req.Phone
	emp.Email = req.Email
	emp.Designation = req.Designation
	emp.JoiningDate = joiningDate
	emp.Status = req.Status
	emp.Compensation = compensationFromInput(req.BasicSalary, req.Allowances, req.Deductions)

	if err := applyProfileUpdate(emp, req.Teacher, req.Officer, req.Staff); err != nil {
		return EmployeeResponse{}, err
	}

	if err := qtx.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.writeLifecycleEvent(ctx, tx, events.EmployeeDeleted, emp); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) writeLifecycleEvent(
	ctx context.Context,
	tx *sql.Tx,
	eventType string,
	emp *Employee,
) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.EmployeeLifecycleEvent{
		EventType:    eventType,
		EmployeeID:   emp.ID.String(),
		EmployeeType: emp.EmployeeType,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   emp.ID.String(),
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// attachProfile enforces variant/type agreement at creation: exactly one
// profile must be supplied, and it must match the declared employee type.
func attachProfile(
	emp *Employee,
	teacher *TeacherProfileInput,
	officer *OfficerProfileInput,
	staff *StaffProfileInput,
) error {
	supplied := 0
	if teacher != nil {
		supplied++
	}
	if officer != nil {
		supplied++
	}
	if staff != nil {
		supplied++
	}
	if supplied != 1 {
		return employeeerrors.ErrProfileRequired
	}

	switch emp.EmployeeType {
	case TypeTeacher:
		if teacher == nil {
			return employeeerrors.ErrProfileTypeMismatch
		}
		emp.TeacherProfile = &TeacherProfile{
			ID:               uuid.New(),
			EmployeeID:       emp.ID,
			Faculty:          teacher.Faculty,
			Department:       teacher.Department,
			ResearchArea:     teacher.ResearchArea,
			PublicationCount: teacher.PublicationCount,
		}
	case TypeOfficer:
		if officer == nil {
			return employeeerrors.ErrProfileTypeMismatch
		}
		emp.OfficerProfile = &OfficerProfile{
			ID:               uuid.New(),
			EmployeeID:       emp.ID,
			Office:           officer.Office,
			Responsibilities: pq.StringArray(officer.Responsibilities),
		}
	case TypeStaff:
		if staff == nil {
			return employeeerrors.ErrProfileTypeMismatch
		}
		emp.StaffProfile = &StaffProfile{
			ID:         uuid.New(),
			EmployeeID: emp.ID,
			Section:    staff.Section,
			Shift:      staff.Shift,
		}
	}
	return nil
}

// applyProfileUpdate applies a profile payload only when it matches the
// stored employee type; a payload for any other variant is rejected.
func applyProfileUpdate(
	emp *Employee,
	teacher *TeacherProfileInput,
	officer *OfficerProfileInput,
	staff *StaffProfileInput,
) error {
	if (teacher != nil && emp.EmployeeType != TypeTeacher) ||
		(officer != nil && emp.EmployeeType != TypeOfficer) ||
		(staff != nil && emp.EmployeeType != TypeStaff) {
		return employeeerrors.ErrProfileTypeMismatch
	}

	switch {
	case teacher != nil && emp.TeacherProfile != nil:
		emp.TeacherProfile.Faculty = teacher.Faculty
		emp.TeacherProfile.Department = teacher.Department
		emp.TeacherProfile.ResearchArea = teacher.ResearchArea
		emp.TeacherProfile.PublicationCount = teacher.PublicationCount
	case officer != nil && emp.OfficerProfile != nil:
		emp.OfficerProfile.Office = officer.Office
		emp.OfficerProfile.Responsibilities = pq.StringArray(officer.Responsibilities)
	case staff != nil && emp.StaffProfile != nil:
		emp.StaffProfile.Section = staff.Section
		emp.StaffProfile.Shift = staff.Shift
	}
	return nil
}

func compensationFromInput(basic int64, a AllowancesInput, d DeductionsInput) Compensation {
	return Compensation{
		BasicSalary:    basic,
		HouseRent:      a.HouseRent,
		Medical:        a.Medical,
		Transport:      a.Transport,
		Education:      a.Education,
		Special:        a.Special,
		Tax:            d.Tax,
		ProvidentFund:  d.ProvidentFund,
		Insurance:      d.Insurance,
		Loan:           d.Loan,
		OtherDeduction: d.Other,
	}
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidJoiningDate
	}
	return t, nil
}

func mapToResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           emp.ID.String(),
		Name:         emp.Name,
		Age:          emp.Age,
		Phone:        emp.Phone,
		Email:        emp.Email,
		Designation:  emp.Designation,
		EmployeeType: emp.EmployeeType,
		JoiningDate:  emp.JoiningDate.Format("2006-01-02"),
		Status:       emp.Status,
		BasicSalary:  emp.Compensation.BasicSalary,
		Allowances: AllowancesPayload{
			HouseRent: emp.Compensation.HouseRent,
			Medical:   emp.Compensation.Medical,
			Transport: emp.Compensation.Transport,
			Education: emp.Compensation.Education,
			Special:   emp.Compensation.Special,
		},
		Deductions: DeductionsPayload{
			Tax:           emp.Compensation.Tax,
			ProvidentFund: emp.Compensation.ProvidentFund,
			Insurance:     emp.Compensation.Insurance,
			Loan:          emp.Compensation.Loan,
			Other:         emp.Compensation.OtherDeduction,
		},
		GrossSalary: emp.Compensation.Gross(),
		NetSalary:   emp.Compensation.Net(),
	}

	if emp.TeacherProfile != nil {
		resp.Teacher = &TeacherProfilePayload{
			Faculty:          emp.TeacherProfile.Faculty,
			Department:       emp.TeacherProfile.Department,
			ResearchArea:     emp.TeacherProfile.ResearchArea,
			PublicationCount: emp.TeacherProfile.PublicationCount,
		}
	}
	if emp.OfficerProfile != nil {
		resp.Officer = &OfficerProfilePayload{
			Office:           emp.OfficerProfile.Office,
			Responsibilities: []string(emp.OfficerProfile.Responsibilities),
		}
	}
	if emp.StaffProfile != nil {
		resp.Staff = &StaffProfilePayload{
			Section: emp.StaffProfile.Section,
			Shift:   emp.StaffProfile.Shift,
		}
	}

	return resp
}

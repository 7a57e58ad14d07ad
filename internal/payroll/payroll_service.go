package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	ProcessPeriod(ctx context.Context, req ProcessPayrollRequest) (ProcessPayrollResponse, error)
	GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollResponse, int64, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	MarkPaid(ctx context.Context, id string) (PayrollResponse, error)
	BulkMarkPaid(ctx context.Context, req BulkMarkPaidRequest) (BulkMarkPaidResponse, error)
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

// ProcessPeriod runs payroll for one (month, year) period. Each employee is
// handled independently: an existing snapshot for the period records a skip,
// an insert losing the uniqueness race records a skip, and neither voids the
// rest of the batch. Re-running the same period is therefore idempotent.
func (s *service) ProcessPeriod(
	ctx context.Context,
	req ProcessPayrollRequest,
) (ProcessPayrollResponse, error) {
	emps, err := s.repo.FindEligibleEmployees(ctx, req.EmployeeIDs)
	if err != nil {
		return ProcessPayrollResponse{}, mapRepositoryError(err)
	}
	if len(emps) == 0 {
		return ProcessPayrollResponse{}, payrollerrors.ErrNoEligibleEmployees
	}

	resp := ProcessPayrollResponse{
		Month:     req.Month,
		Year:      req.Year,
		Processed: []ProcessedEmployeePayload{},
		Skipped:   []SkippedEmployeePayload{},
	}

	for _, emp := range emps {
		exists, err := s.repo.ExistsForPeriod(ctx, emp.ID.String(), req.Month, req.Year)
		if err != nil {
			resp.Skipped = append(resp.Skipped, SkippedEmployeePayload{
				EmployeeID: emp.ID.String(),
				Reason:     err.Error(),
			})
			continue
		}
		if exists {
			resp.Skipped = append(resp.Skipped, SkippedEmployeePayload{
				EmployeeID: emp.ID.String(),
				Reason:     SkipReasonAlreadyProcessed,
			})
			continue
		}

		p := &Payroll{
			ID:           uuid.New(),
			EmployeeID:   emp.ID,
			Month:        req.Month,
			Year:         req.Year,
			Compensation: emp.Compensation,
			GrossSalary:  emp.Compensation.Gross(),
			NetSalary:    emp.Compensation.Net(),
			Status:       StatusPending,
		}

		if err := s.repo.Create(ctx, p); err != nil {
			mapped := mapRepositoryError(err)
			reason := mapped.Error()
			// A concurrent run beat us to the insert; same outcome as the
			// existence check above.
			if errors.Is(mapped, payrollerrors.ErrDuplicatePayrollPeriod) {
				reason = SkipReasonAlreadyProcessed
			}
			resp.Skipped = append(resp.Skipped, SkippedEmployeePayload{
				EmployeeID: emp.ID.String(),
				Reason:     reason,
			})
			continue
		}

		resp.Processed = append(resp.Processed, ProcessedEmployeePayload{
			EmployeeID:  emp.ID.String(),
			PayrollID:   p.ID.String(),
			GrossSalary: p.GrossSalary,
			NetSalary:   p.NetSalary,
		})
	}

	s.writeProcessedEvent(ctx, resp)

	return resp, nil
}

func (s *service) GetAll(
	ctx context.Context,
	filter GetPayrollsFilterRequest,
) ([]PayrollResponse, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	qf := QueryFilter{
		Month:      filter.Month,
		Year:       filter.Year,
		Status:     filter.Status,
		EmployeeID: filter.EmployeeID,
		Offset:     (page - 1) * limit,
		Limit:      limit,
	}

	payrolls, err := s.repo.FindAll(ctx, qf)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}

	total, err := s.repo.Count(ctx, qf)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}

	resp := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		resp[i] = mapToResponse(p)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*p), nil
}

// MarkPaid is a one-way transition: marking an already-PAID record is a
// client error, not a no-op.
func (s *service) MarkPaid(ctx context.Context, id string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if p.Status == StatusPaid {
		return PayrollResponse{}, payrollerrors.ErrAlreadyPaid
	}

	now := time.Now().UTC()
	p.Status = StatusPaid
	p.PaidAt = &now

	if err := qtx.Update(ctx, p); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*p), nil
}

// BulkMarkPaid intentionally has looser semantics than the single-record
// form: missing or already-paid ids are excluded from the count without a
// per-id error.
func (s *service) BulkMarkPaid(
	ctx context.Context,
	req BulkMarkPaidRequest,
) (BulkMarkPaidResponse, error) {
	if len(req.PayrollIDs) == 0 {
		return BulkMarkPaidResponse{}, payrollerrors.ErrEmptyPayrollIDList
	}

	paidAt := time.Now().UTC()
	count, err := s.repo.BulkMarkPaid(ctx, req.PayrollIDs, paidAt)
	if err != nil {
		return BulkMarkPaidResponse{}, mapRepositoryError(err)
	}

	return BulkMarkPaidResponse{
		PaidCount: count,
		PaidAt:    paidAt.Format(time.RFC3339),
	}, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return payrollerrors.ErrInvalidPayrollID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

// writeProcessedEvent records the run summary in the outbox. Best effort: a
// failed event write must not fail a payroll run that already persisted.
func (s *service) writeProcessedEvent(ctx context.Context, resp ProcessPayrollResponse) {
	if s.outbox == nil {
		return
	}

	payload, err := json.Marshal(events.PayrollProcessedEvent{
		EventType:      "payroll.processed",
		Month:          resp.Month,
		Year:           resp.Year,
		ProcessedCount: len(resp.Processed),
		SkippedCount:   len(resp.Skipped),
		OccurredAt:     time.Now().UTC(),
	})
	if err != nil {
		contextutil.GetLogger(ctx).Error("marshal payroll processed event failed", zap.Error(err))
		return
	}

	err = s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll_run",
		AggregateID:   uuid.New().String(),
		EventType:     "payroll.processed",
		Topic:         events.PayrollProcessedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		contextutil.GetLogger(ctx).Error("write payroll processed event failed", zap.Error(err))
	}
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:          p.ID.String(),
		EmployeeID:  p.EmployeeID.String(),
		Month:       p.Month,
		Year:        p.Year,
		BasicSalary: p.Compensation.BasicSalary,
		Allowances: employee.AllowancesPayload{
			HouseRent: p.Compensation.HouseRent,
			Medical:   p.Compensation.Medical,
			Transport: p.Compensation.Transport,
			Education: p.Compensation.Education,
			Special:   p.Compensation.Special,
		},
		Deductions: employee.DeductionsPayload{
			Tax:           p.Compensation.Tax,
			ProvidentFund: p.Compensation.ProvidentFund,
			Insurance:     p.Compensation.Insurance,
			Loan:          p.Compensation.Loan,
			Other:         p.Compensation.OtherDeduction,
		},
		GrossSalary: p.GrossSalary,
		NetSalary:   p.NetSalary,
		Status:      p.Status,
	}

	if p.Employee != nil {
		resp.EmployeeName = p.Employee.Name
	}
	if p.PaidAt != nil {
		v := p.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}

	return resp
}

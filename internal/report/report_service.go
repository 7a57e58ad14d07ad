package report

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	ByEmployeeType(ctx context.Context) (EmployeeTypeReportResponse, error)
	ByDepartment(ctx context.Context) (DepartmentReportResponse, error)
	ByFaculty(ctx context.Context) (FacultyReportResponse, error)
	ByDesignation(ctx context.Context) (DesignationReportResponse, error)
	Monthly(ctx context.Context, year int) (MonthlyReportResponse, error)
}

type service struct {
	repo  Repository
	group singleflight.Group
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ByEmployeeType(ctx context.Context) (EmployeeTypeReportResponse, error) {
	v, err, _ := s.group.Do("employee-type", func() (any, error) {
		rows, err := s.repo.SummarizeByEmployeeType(ctx)
		if err != nil {
			return nil, err
		}
		return EmployeeTypeReportResponse{Groups: mapGroups(rows)}, nil
	})
	if err != nil {
		return EmployeeTypeReportResponse{}, err
	}
	return v.(EmployeeTypeReportResponse), nil
}

func (s *service) ByDepartment(ctx context.Context) (DepartmentReportResponse, error) {
	v, err, _ := s.group.Do("department", func() (any, error) {
		rows, err := s.repo.SummarizeByDepartment(ctx)
		if err != nil {
			return nil, err
		}
		return DepartmentReportResponse{Groups: mapGroups(rows)}, nil
	})
	if err != nil {
		return DepartmentReportResponse{}, err
	}
	return v.(DepartmentReportResponse), nil
}

func (s *service) ByFaculty(ctx context.Context) (FacultyReportResponse, error) {
	v, err, _ := s.group.Do("faculty", func() (any, error) {
		rows, err := s.repo.SummarizeByFaculty(ctx)
		if err != nil {
			return nil, err
		}
		return FacultyReportResponse{Groups: mapGroups(rows)}, nil
	})
	if err != nil {
		return FacultyReportResponse{}, err
	}
	return v.(FacultyReportResponse), nil
}

func (s *service) ByDesignation(ctx context.Context) (DesignationReportResponse, error) {
	v, err, _ := s.group.Do("designation", func() (any, error) {
		rows, err := s.repo.SummarizeByDesignation(ctx)
		if err != nil {
			return nil, err
		}

		groups := make([]DesignationSummaryPayload, len(rows))
		for i, row := range rows {
			groups[i] = DesignationSummaryPayload{
				GroupSummaryPayload: mapGroup(row),
				AverageNet:          averageNet(row.TotalNet, row.Count),
			}
		}
		return DesignationReportResponse{Groups: groups}, nil
	})
	if err != nil {
		return DesignationReportResponse{}, err
	}
	return v.(DesignationReportResponse), nil
}

func (s *service) Monthly(ctx context.Context, year int) (MonthlyReportResponse, error) {
	key := fmt.Sprintf("monthly:%d", year)
	v, err, _ := s.group.Do(key, func() (any, error) {
		rows, err := s.repo.SummarizeByMonth(ctx, year)
		if err != nil {
			return nil, err
		}
		return MonthlyReportResponse{
			Year:   year,
			Months: buildMonthlySeries(rows),
		}, nil
	})
	if err != nil {
		return MonthlyReportResponse{}, err
	}
	return v.(MonthlyReportResponse), nil
}

// buildMonthlySeries always emits months 1 through 12, zero-filled where no
// records exist, regardless of what the query returned.
func buildMonthlySeries(rows []MonthTotals) []MonthlySummaryPayload {
	byMonth := make(map[int]MonthTotals, len(rows))
	for _, row := range rows {
		byMonth[row.Month] = row
	}

	months := make([]MonthlySummaryPayload, 12)
	for m := 1; m <= 12; m++ {
		entry := MonthlySummaryPayload{Month: m}
		if row, ok := byMonth[m]; ok {
			entry.Count = row.Count
			entry.TotalBasic = row.TotalBasic
			entry.TotalAllowances = row.TotalAllowances
			entry.TotalDeductions = row.TotalDeductions
			entry.TotalGross = row.TotalGross
			entry.TotalNet = row.TotalNet
		}
		months[m-1] = entry
	}
	return months
}

// averageNet guards the zero-count case explicitly; the monthly zero-fill is
// the one place a group can legitimately have count zero.
func averageNet(totalNet, count int64) int64 {
	if count == 0 {
		return 0
	}
	return totalNet / count
}

func mapGroup(row GroupTotals) GroupSummaryPayload {
	return GroupSummaryPayload{
		Key:             row.Key,
		Count:           row.Count,
		TotalBasic:      row.TotalBasic,
		TotalAllowances: row.TotalAllowances,
		TotalDeductions: row.TotalDeductions,
		TotalGross:      row.TotalGross,
		TotalNet:        row.TotalNet,
	}
}

func mapGroups(rows []GroupTotals) []GroupSummaryPayload {
	groups := make([]GroupSummaryPayload, len(rows))
	for i, row := range rows {
		groups[i] = mapGroup(row)
	}
	return groups
}

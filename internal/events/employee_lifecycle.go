package events

import "time"

const EmployeeLifecycleTopic = "payroll.employee.lifecycle.v1"

const (
	EmployeeCreated = "employee.created"
	EmployeeDeleted = "employee.deleted"
)

type EmployeeLifecycleEvent struct {
	EventType    string    `json:"event_type"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeType string    `json:"employee_type"`
	OccurredAt   time.Time `json:"occurred_at"`
}

package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	TypeTeacher = "TEACHER"
	TypeOfficer = "OFFICER"
	TypeStaff   = "STAFF"

	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"

	ShiftMorning = "MORNING"
	ShiftEvening = "EVENING"
	ShiftNight   = "NIGHT"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Age          int       `gorm:"not null"`
	Phone        string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_phone"`
	Email        string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_employee_email"`
	Designation  string    `gorm:"type:varchar(120);not null;index"`
	EmployeeType string    `gorm:"type:varchar(20);not null;index"`
	JoiningDate  time.Time `gorm:"type:date;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`

	Compensation Compensation `gorm:"embedded"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Exactly one profile is set, selected by EmployeeType.
	TeacherProfile *TeacherProfile `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	OfficerProfile *OfficerProfile `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	StaffProfile   *StaffProfile   `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

type TeacherProfile struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_profile_employee"`
	Faculty          string    `gorm:"type:varchar(120);not null;index"`
	Department       string    `gorm:"type:varchar(120);not null;index"`
	ResearchArea     *string   `gorm:"type:varchar(200)"`
	PublicationCount int       `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OfficerProfile struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EmployeeID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_officer_profile_employee"`
	Office           string         `gorm:"type:varchar(120);not null"`
	Responsibilities pq.StringArray `gorm:"type:text[]"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type StaffProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_staff_profile_employee"`
	Section    string    `gorm:"type:varchar(120);not null"`
	Shift      string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

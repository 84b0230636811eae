package model

import "time"

const (
	RoleAdmin     = "admin"
	RoleCandidate = "candidate"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusUncertain = "uncertain"
	StatusCancelled = "cancelled"
)

type User struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Email           string    `gorm:"uniqueIndex;size:191" json:"email"`
	Password        string    `json:"-"`
	Name            string    `json:"name"`
	Role            string    `gorm:"size:16" json:"role"`
	Phone           string    `json:"phone,omitempty"`
	CurrentPosition string    `json:"current_position,omitempty"`
	ExperienceYears *int      `json:"experience_years,omitempty"`
	Skills          string    `json:"skills,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Interview struct {
	ID                  string     `gorm:"primaryKey;size:36" json:"id"`
	OwnerID             string     `gorm:"index;size:36" json:"owner_id"`
	CompanyName         string     `json:"company_name"`
	JobTitle            string     `json:"job_title"`
	ScheduledDate       *time.Time `json:"scheduled_date"`
	Status              string     `gorm:"size:16;default:scheduled" json:"status"`
	Round               int        `json:"round,omitempty"`
	InterviewType       string     `json:"interview_type,omitempty"`
	Location            string     `json:"location,omitempty"`
	Notes               string     `gorm:"type:text" json:"notes,omitempty"`
	InterviewerName     string     `json:"interviewer_name,omitempty"`
	InterviewerEmail    string     `json:"interviewer_email,omitempty"`
	InterviewerPosition string     `json:"interviewer_position,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (User) TableName() string      { return "users" }
func (Interview) TableName() string { return "interviews" }

func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusUncertain, StatusCancelled:
		return true
	}
	return false
}

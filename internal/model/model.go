package model

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	Name            string `json:"name" binding:"required"`
	Phone           string `json:"phone"`
	CurrentPosition string `json:"current_position"`
	ExperienceYears *int   `json:"experience_years"`
	Skills          string `json:"skills"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User    User   `json:"user"`
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

// InterviewRequest carries interview fields over the wire. The scheduled
// date arrives as a string in whatever format the client managed to produce;
// ParseScheduledDate is the single place it gets normalized.
type InterviewRequest struct {
	CompanyName         string `json:"company_name" binding:"required"`
	JobTitle            string `json:"job_title" binding:"required"`
	ScheduledDate       string `json:"scheduled_date"`
	Status              string `json:"status"`
	Round               int    `json:"round"`
	InterviewType       string `json:"interview_type"`
	Location            string `json:"location"`
	Notes               string `json:"notes"`
	InterviewerName     string `json:"interviewer_name"`
	InterviewerEmail    string `json:"interviewer_email"`
	InterviewerPosition string `json:"interviewer_position"`
}

type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	CurrentPosition string `json:"current_position"`
	ExperienceYears *int   `json:"experience_years"`
	Skills          string `json:"skills"`
}

type DashboardStats struct {
	TotalInterviews     int `json:"totalInterviews"`
	TodaysInterviews    int `json:"todaysInterviews"`
	UpcomingInterviews  int `json:"upcomingInterviews"`
	CompletedInterviews int `json:"completedInterviews"`
}

type AdminDashboard struct {
	Stats           DashboardStats `json:"stats"`
	TotalUsers      int64          `json:"totalUsers"`
	TotalCandidates int64          `json:"totalCandidates"`
}

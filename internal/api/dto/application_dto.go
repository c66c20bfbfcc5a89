package dto

// ApplyRequest is the JSON form of an application submission. Multipart
// submissions carry the same fields plus a "resume" file part.
type ApplyRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	JobID     string `json:"job_id" binding:"required"`
	ResumeURL string `json:"resume_url"`
}

type UpdateStageRequest struct {
	Stage           string `json:"stage" binding:"required"`
	HiredEmployeeID string `json:"hired_employee_id"`
}

type ListApplicationsRequest struct {
	JobID    string `form:"job_id"`
	Stage    string `form:"stage"`
	PageSize int    `form:"page_size"`
	Cursor   string `form:"cursor"`
}

type ListApplicationsResponse struct {
	Applications []ApplicationDTO `json:"applications"`
	NextCursor   string           `json:"next_cursor,omitempty"`
}

type ApplicationDTO struct {
	ID              string  `json:"id"`
	JobID           string  `json:"job_id"`
	JobTitle        *string `json:"job_title,omitempty"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone"`
	ResumePath      *string `json:"resume_path"`
	ResumeURL       *string `json:"resume_url"`
	Stage           string  `json:"stage"`
	AppliedAt       string  `json:"applied_at"`
	HiredEmployeeID *string `json:"hired_employee_id"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type ScheduleInterviewRequest struct {
	ApplicationID    string `json:"application_id" binding:"required"`
	InterviewTime    string `json:"interview_time" binding:"required"`
	InterviewerEmail string `json:"interviewer_email"`
}

type ScheduledEventDTO struct {
	EventID     string `json:"event_id"`
	MeetingLink string `json:"meeting_link"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type StatsResponse struct {
	TotalJobs          int             `json:"totalJobs"`
	TotalApplications  int             `json:"totalApplications"`
	StageDistribution  []StageCountDTO `json:"stageDistribution"`
	RecentApplications []DateCountDTO  `json:"recentApplications"`
}

type StageCountDTO struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

type DateCountDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

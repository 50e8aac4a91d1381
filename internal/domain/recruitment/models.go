// Package recruitment covers job openings, applicants and interview feedback.
package recruitment

import (
	"time"

	"hrms/internal/domain/enums"
)

type Recruitment struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	DepartmentID   string    `json:"departmentId"`
	JobTitle       string    `json:"jobTitle"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Applicant struct {
	ID                string                  `json:"id"`
	OrganizationID    string                  `json:"organizationId"`
	FirstName         string                  `json:"firstName"`
	LastName          string                  `json:"lastName"`
	Email             string                  `json:"email"`
	ContactNumber     string                  `json:"contactNumber"`
	AppliedRole       string                  `json:"appliedRole"`
	RecruitmentStatus enums.RecruitmentStatus `json:"recruitmentStatus"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

type InterviewInsight struct {
	ID             string                `json:"id"`
	OrganizationID string                `json:"organizationId"`
	ApplicantID    string                `json:"applicantId"`
	InterviewerID  string                `json:"interviewerId"`
	Feedback       string                `json:"feedback"`
	InterviewDate  *time.Time            `json:"interviewDate"`
	ResponseDate   *time.Time            `json:"responseDate"`
	Status         enums.InterviewStatus `json:"status"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

type Filter struct {
	DepartmentID      string
	ApplicantID       string
	RecruitmentID     string
	InterviewerID     string
	RecruitmentStatus enums.RecruitmentStatus
	InterviewStatus   enums.InterviewStatus
	Limit             int
	Offset            int
}

package recruitment

import (
	"strings"
	"time"

	"hrms/internal/domain/enums"
	"hrms/internal/domain/validation"
)

func normalizeRecruitment(r *Recruitment) {
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.Description = strings.TrimSpace(r.Description)
	r.DepartmentID = strings.TrimSpace(r.DepartmentID)
}

func validateRecruitment(r Recruitment) error {
	v := validation.New()
	v.Required("jobTitle", r.JobTitle)
	v.MaxLen("jobTitle", r.JobTitle, 100)
	v.Required("description", r.Description)
	v.MaxLen("description", r.Description, 500)
	return v.Err()
}

func normalizeApplicant(a *Applicant) {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.ContactNumber = strings.TrimSpace(a.ContactNumber)
	a.AppliedRole = strings.TrimSpace(a.AppliedRole)
	if a.RecruitmentStatus == "" {
		a.RecruitmentStatus = enums.RecruitmentNotSpecified
	}
}

func validateApplicant(a Applicant) error {
	v := validation.New()
	v.Required("firstName", a.FirstName)
	v.MaxLen("firstName", a.FirstName, 100)
	v.Required("lastName", a.LastName)
	v.MaxLen("lastName", a.LastName, 100)
	v.Email("email", a.Email)
	v.MaxLen("email", a.Email, 100)
	v.Required("contactNumber", a.ContactNumber)
	v.MaxLen("contactNumber", a.ContactNumber, 20)
	v.Required("appliedRole", a.AppliedRole)
	v.MaxLen("appliedRole", a.AppliedRole, 100)
	v.Enum("recruitmentStatus", a.RecruitmentStatus.Valid(), enums.RecruitmentStatuses())
	return v.Err()
}

func normalizeInterview(i *InterviewInsight, now time.Time) {
	i.Feedback = strings.TrimSpace(i.Feedback)
	if i.Status == "" {
		i.Status = enums.InterviewPending
	}
	if i.Status == enums.InterviewCompleted && i.ResponseDate == nil {
		i.ResponseDate = &now
	}
}

func validateInterview(i InterviewInsight) error {
	v := validation.New()
	v.Required("applicantId", i.ApplicantID)
	v.Required("interviewerId", i.InterviewerID)
	v.MaxLen("feedback", i.Feedback, 500)
	v.Enum("status", i.Status.Valid(), enums.InterviewStatuses())
	if i.InterviewDate != nil && i.ResponseDate != nil {
		v.DateOrder("interviewDate", *i.InterviewDate, "responseDate", *i.ResponseDate)
	}
	return v.Err()
}

func checkInterviewTransition(from, to enums.InterviewStatus) error {
	if from.CanTransition(to) {
		return nil
	}
	v := validation.New()
	v.Add("status", "cannot move from "+string(from)+" to "+string(to))
	return v.Err()
}

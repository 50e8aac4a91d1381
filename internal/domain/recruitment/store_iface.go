package recruitment

import "context"

type StoreAPI interface {
	InsertRecruitment(ctx context.Context, r Recruitment) (*Recruitment, error)
	GetRecruitment(ctx context.Context, orgID, id string) (*Recruitment, error)
	UpdateRecruitment(ctx context.Context, orgID, id string, apply func(*Recruitment) error) (*Recruitment, error)
	DeleteRecruitment(ctx context.Context, orgID, id string) error
	ListRecruitments(ctx context.Context, orgID string, f Filter) ([]Recruitment, error)
	Link(ctx context.Context, orgID, recruitmentID, applicantID string) error
	Unlink(ctx context.Context, orgID, recruitmentID, applicantID string) error

	InsertApplicant(ctx context.Context, a Applicant) (*Applicant, error)
	GetApplicant(ctx context.Context, orgID, id string) (*Applicant, error)
	UpdateApplicant(ctx context.Context, orgID, id string, apply func(*Applicant) error) (*Applicant, error)
	ListApplicants(ctx context.Context, orgID string, f Filter) ([]Applicant, error)

	InsertInterview(ctx context.Context, i InterviewInsight) (*InterviewInsight, error)
	GetInterview(ctx context.Context, orgID, id string) (*InterviewInsight, error)
	UpdateInterview(ctx context.Context, orgID, id string, apply func(*InterviewInsight) error) (*InterviewInsight, error)
	ListInterviews(ctx context.Context, orgID string, f Filter) ([]InterviewInsight, error)
}

var _ StoreAPI = (*Store)(nil)

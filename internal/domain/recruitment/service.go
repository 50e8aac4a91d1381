package recruitment

import (
	"context"
	"time"
)

type Service struct {
	Store StoreAPI
	Now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store, Now: time.Now}
}

func (s *Service) CreateRecruitment(ctx context.Context, orgID string, r Recruitment) (*Recruitment, error) {
	r.OrganizationID = orgID
	normalizeRecruitment(&r)
	if err := validateRecruitment(r); err != nil {
		return nil, err
	}
	return s.Store.InsertRecruitment(ctx, r)
}

func (s *Service) GetRecruitment(ctx context.Context, orgID, id string) (*Recruitment, error) {
	return s.Store.GetRecruitment(ctx, orgID, id)
}

func (s *Service) UpdateRecruitment(ctx context.Context, orgID, id string, mutate func(*Recruitment) error) (*Recruitment, error) {
	return s.Store.UpdateRecruitment(ctx, orgID, id, func(current *Recruitment) error {
		snapshot := *current
		if err := mutate(current); err != nil {
			return err
		}
		current.ID = snapshot.ID
		current.OrganizationID = snapshot.OrganizationID
		current.CreatedAt = snapshot.CreatedAt
		current.UpdatedAt = snapshot.UpdatedAt
		normalizeRecruitment(current)
		return validateRecruitment(*current)
	})
}

func (s *Service) DeleteRecruitment(ctx context.Context, orgID, id string) error {
	return s.Store.DeleteRecruitment(ctx, orgID, id)
}

func (s *Service) ListRecruitments(ctx context.Context, orgID string, f Filter) ([]Recruitment, error) {
	return s.Store.ListRecruitments(ctx, orgID, f)
}

func (s *Service) CreateApplicant(ctx context.Context, orgID string, a Applicant) (*Applicant, error) {
	a.OrganizationID = orgID
	normalizeApplicant(&a)
	if err := validateApplicant(a); err != nil {
		return nil, err
	}
	return s.Store.InsertApplicant(ctx, a)
}

func (s *Service) GetApplicant(ctx context.Context, orgID, id string) (*Applicant, error) {
	return s.Store.GetApplicant(ctx, orgID, id)
}

func (s *Service) UpdateApplicant(ctx context.Context, orgID, id string, mutate func(*Applicant) error) (*Applicant, error) {
	return s.Store.UpdateApplicant(ctx, orgID, id, func(current *Applicant) error {
		snapshot := *current
		if err := mutate(current); err != nil {
			return err
		}
		current.ID = snapshot.ID
		current.OrganizationID = snapshot.OrganizationID
		current.CreatedAt = snapshot.CreatedAt
		current.UpdatedAt = snapshot.UpdatedAt
		normalizeApplicant(current)
		return validateApplicant(*current)
	})
}

func (s *Service) ListApplicants(ctx context.Context, orgID string, f Filter) ([]Applicant, error) {
	return s.Store.ListApplicants(ctx, orgID, f)
}

// LinkApplicant attaches an applicant to a recruitment. Linking twice is a no-op.
func (s *Service) LinkApplicant(ctx context.Context, orgID, recruitmentID, applicantID string) error {
	return s.Store.Link(ctx, orgID, recruitmentID, applicantID)
}

func (s *Service) UnlinkApplicant(ctx context.Context, orgID, recruitmentID, applicantID string) error {
	return s.Store.Unlink(ctx, orgID, recruitmentID, applicantID)
}

// ApplicantsFor lists the applicants linked to a recruitment.
func (s *Service) ApplicantsFor(ctx context.Context, orgID, recruitmentID string, limit, offset int) ([]Applicant, error) {
	if _, err := s.Store.GetRecruitment(ctx, orgID, recruitmentID); err != nil {
		return nil, err
	}
	return s.Store.ListApplicants(ctx, orgID, Filter{RecruitmentID: recruitmentID, Limit: limit, Offset: offset})
}

// RecruitmentsFor lists the recruitments an applicant is linked to.
func (s *Service) RecruitmentsFor(ctx context.Context, orgID, applicantID string, limit, offset int) ([]Recruitment, error) {
	if _, err := s.Store.GetApplicant(ctx, orgID, applicantID); err != nil {
		return nil, err
	}
	return s.Store.ListRecruitments(ctx, orgID, Filter{ApplicantID: applicantID, Limit: limit, Offset: offset})
}

func (s *Service) CreateInterview(ctx context.Context, orgID string, i InterviewInsight) (*InterviewInsight, error) {
	i.OrganizationID = orgID
	normalizeInterview(&i, s.Now().UTC())
	if err := validateInterview(i); err != nil {
		return nil, err
	}
	return s.Store.InsertInterview(ctx, i)
}

func (s *Service) GetInterview(ctx context.Context, orgID, id string) (*InterviewInsight, error) {
	return s.Store.GetInterview(ctx, orgID, id)
}

// UpdateInterview keeps the applicant fixed. Completing stamps the response
// date when none was given.
func (s *Service) UpdateInterview(ctx context.Context, orgID, id string, mutate func(*InterviewInsight) error) (*InterviewInsight, error) {
	now := s.Now().UTC()
	return s.Store.UpdateInterview(ctx, orgID, id, func(current *InterviewInsight) error {
		snapshot := *current
		if err := mutate(current); err != nil {
			return err
		}
		current.ID = snapshot.ID
		current.OrganizationID = snapshot.OrganizationID
		current.ApplicantID = snapshot.ApplicantID
		current.CreatedAt = snapshot.CreatedAt
		current.UpdatedAt = snapshot.UpdatedAt
		normalizeInterview(current, now)
		if err := validateInterview(*current); err != nil {
			return err
		}
		return checkInterviewTransition(snapshot.Status, current.Status)
	})
}

func (s *Service) ListInterviews(ctx context.Context, orgID string, f Filter) ([]InterviewInsight, error) {
	return s.Store.ListInterviews(ctx, orgID, f)
}

package recruitmenthandler

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/apperr"
	"hrms/internal/domain/enums"
	"hrms/internal/domain/recruitment"
	"hrms/internal/transport/http/handlers/handlertest"
)

type memStore struct {
	recruitment.StoreAPI
	recruitments map[string]recruitment.Recruitment
	applicants   map[string]recruitment.Applicant
	interviews   map[string]recruitment.InterviewInsight
	links        map[string]map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		recruitments: map[string]recruitment.Recruitment{},
		applicants:   map[string]recruitment.Applicant{},
		interviews:   map[string]recruitment.InterviewInsight{},
		links:        map[string]map[string]bool{},
	}
}

func (m *memStore) InsertRecruitment(_ context.Context, r recruitment.Recruitment) (*recruitment.Recruitment, error) {
	r.ID = "rec-" + strconv.Itoa(len(m.recruitments)+1)
	m.recruitments[r.ID] = r
	return &r, nil
}

func (m *memStore) GetRecruitment(_ context.Context, orgID, id string) (*recruitment.Recruitment, error) {
	r, ok := m.recruitments[id]
	if !ok || r.OrganizationID != orgID {
		return nil, apperr.ErrNotFound
	}
	return &r, nil
}

func (m *memStore) InsertApplicant(_ context.Context, a recruitment.Applicant) (*recruitment.Applicant, error) {
	for _, existing := range m.applicants {
		if existing.OrganizationID == a.OrganizationID && existing.Email == a.Email {
			return nil, apperr.ErrConflict
		}
	}
	a.ID = "app-" + strconv.Itoa(len(m.applicants)+1)
	m.applicants[a.ID] = a
	return &a, nil
}

func (m *memStore) Link(_ context.Context, orgID, recruitmentID, applicantID string) error {
	r, ok := m.recruitments[recruitmentID]
	a, found := m.applicants[applicantID]
	if !ok || !found || r.OrganizationID != orgID || a.OrganizationID != orgID {
		return apperr.ErrNotFound
	}
	if m.links[recruitmentID] == nil {
		m.links[recruitmentID] = map[string]bool{}
	}
	m.links[recruitmentID][applicantID] = true
	return nil
}

func (m *memStore) ListApplicants(_ context.Context, orgID string, f recruitment.Filter) ([]recruitment.Applicant, error) {
	var out []recruitment.Applicant
	for id, a := range m.applicants {
		if a.OrganizationID != orgID {
			continue
		}
		if f.RecruitmentID != "" && !m.links[f.RecruitmentID][id] {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *memStore) InsertInterview(_ context.Context, i recruitment.InterviewInsight) (*recruitment.InterviewInsight, error) {
	i.ID = "int-" + strconv.Itoa(len(m.interviews)+1)
	m.interviews[i.ID] = i
	return &i, nil
}

func (m *memStore) UpdateInterview(_ context.Context, orgID, id string, apply func(*recruitment.InterviewInsight) error) (*recruitment.InterviewInsight, error) {
	i, ok := m.interviews[id]
	if !ok || i.OrganizationID != orgID {
		return nil, apperr.ErrNotFound
	}
	if err := apply(&i); err != nil {
		return nil, err
	}
	m.interviews[id] = i
	return &i, nil
}

var fixedNow = time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)

func newRouter(store *memStore) http.Handler {
	gate := handlertest.NewGate()
	svc := recruitment.NewService(store)
	svc.Now = func() time.Time { return fixedNow }
	h := NewHandler(svc, gate)
	return handlertest.Router(gate, func(r chi.Router) { h.RegisterRoutes(r) })
}

const applicantBody = `{"firstName":"Ada","lastName":"Byron","email":"Ada@Example.com","contactNumber":"555-0100","appliedRole":"Engineer"}`

func TestRecruitmentRoutesRequireHR(t *testing.T) {
	router := newRouter(newMemStore())
	for _, path := range []string{"/recruitments", "/applicants", "/interviews"} {
		rec := handlertest.Do(t, router, http.MethodGet, path, handlertest.EmpToken, "")
		handlertest.ExpectStatus(t, rec, http.StatusForbidden)
	}
}

func TestCreateApplicantDuplicateEmail(t *testing.T) {
	router := newRouter(newMemStore())

	rec := handlertest.Do(t, router, http.MethodPost, "/applicants", handlertest.HRToken, applicantBody)
	handlertest.ExpectStatus(t, rec, http.StatusCreated)
	var got recruitment.Applicant
	handlertest.Decode(t, rec, &got)
	if got.Email != "ada@example.com" || got.RecruitmentStatus != enums.RecruitmentNotSpecified {
		t.Fatalf("unexpected applicant: %+v", got)
	}

	rec = handlertest.Do(t, router, http.MethodPost, "/applicants", handlertest.HRToken, applicantBody)
	handlertest.ExpectStatus(t, rec, http.StatusConflict)
}

func TestLinkApplicantToRecruitment(t *testing.T) {
	store := newMemStore()
	router := newRouter(store)

	rec := handlertest.Do(t, router, http.MethodPost, "/recruitments", handlertest.HRToken, `{"jobTitle":"Engineer","description":"Backend"}`)
	handlertest.ExpectStatus(t, rec, http.StatusCreated)
	var opening recruitment.Recruitment
	handlertest.Decode(t, rec, &opening)

	rec = handlertest.Do(t, router, http.MethodPost, "/applicants", handlertest.HRToken, applicantBody)
	handlertest.ExpectStatus(t, rec, http.StatusCreated)
	var applicant recruitment.Applicant
	handlertest.Decode(t, rec, &applicant)

	path := "/recruitments/" + opening.ID + "/applicants/" + applicant.ID
	rec = handlertest.Do(t, router, http.MethodPut, path, handlertest.HRToken, "")
	handlertest.ExpectStatus(t, rec, http.StatusOK)

	rec = handlertest.Do(t, router, http.MethodGet, "/recruitments/"+opening.ID+"/applicants", handlertest.HRToken, "")
	handlertest.ExpectStatus(t, rec, http.StatusOK)
	var linked []recruitment.Applicant
	handlertest.Decode(t, rec, &linked)
	if len(linked) != 1 || linked[0].ID != applicant.ID {
		t.Fatalf("unexpected linked applicants: %+v", linked)
	}

	rec = handlertest.Do(t, router, http.MethodGet, "/recruitments/rec-missing/applicants", handlertest.HRToken, "")
	handlertest.ExpectStatus(t, rec, http.StatusNotFound)
}

func TestInterviewDefaultsAndCompletion(t *testing.T) {
	store := newMemStore()
	router := newRouter(store)

	rec := handlertest.Do(t, router, http.MethodPost, "/interviews", handlertest.HRToken, `{"applicantId":"app-1"}`)
	handlertest.ExpectStatus(t, rec, http.StatusCreated)
	var created recruitment.InterviewInsight
	handlertest.Decode(t, rec, &created)
	if created.InterviewerID != handlertest.HRID || created.Status != enums.InterviewPending {
		t.Fatalf("unexpected interview: %+v", created)
	}

	rec = handlertest.Do(t, router, http.MethodPut, "/interviews/"+created.ID, handlertest.HRToken, `{"status":"Completed","feedback":"strong"}`)
	handlertest.ExpectStatus(t, rec, http.StatusOK)
	var done recruitment.InterviewInsight
	handlertest.Decode(t, rec, &done)
	if done.ResponseDate == nil || !done.ResponseDate.Equal(fixedNow) {
		t.Fatalf("expected response date %v, got %+v", fixedNow, done.ResponseDate)
	}

	rec = handlertest.Do(t, router, http.MethodPut, "/interviews/"+created.ID, handlertest.HRToken, `{"status":"Pending"}`)
	handlertest.ExpectStatus(t, rec, http.StatusBadRequest)
}

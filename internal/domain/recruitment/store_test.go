package recruitment

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/domain/apperr"
	"hrms/internal/platform/db/dbtest"
)

func TestStoreApplicantEmailUniqueConcurrently(t *testing.T) {
	pool := dbtest.Open(t)
	svc := NewService(NewStore(pool))
	orgID := dbtest.Organization(t, pool, "rec-race")
	email := dbtest.UniqueEmail("applicant")

	const workers = 6
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateApplicant(context.Background(), orgID, sampleApplicant(email))
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, apperr.ErrConflict)
	}
	assert.Equal(t, 1, successes)
}

func TestStoreLinkApplicants(t *testing.T) {
	pool := dbtest.Open(t)
	svc := NewService(NewStore(pool))
	ctx := context.Background()
	orgID := dbtest.Organization(t, pool, "rec")
	otherOrg := dbtest.Organization(t, pool, "rec-other")

	rec, err := svc.CreateRecruitment(ctx, orgID, Recruitment{JobTitle: "Backend Engineer", Description: "Go"})
	require.NoError(t, err)
	app, err := svc.CreateApplicant(ctx, orgID, sampleApplicant(dbtest.UniqueEmail("link")))
	require.NoError(t, err)
	foreign, err := svc.CreateApplicant(ctx, otherOrg, sampleApplicant(dbtest.UniqueEmail("foreign")))
	require.NoError(t, err)

	require.NoError(t, svc.LinkApplicant(ctx, orgID, rec.ID, app.ID))
	require.NoError(t, svc.LinkApplicant(ctx, orgID, rec.ID, app.ID))
	assert.ErrorIs(t, svc.LinkApplicant(ctx, orgID, rec.ID, foreign.ID), apperr.ErrNotFound)

	applicants, err := svc.ApplicantsFor(ctx, orgID, rec.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, app.ID, applicants[0].ID)

	recs, err := svc.RecruitmentsFor(ctx, orgID, app.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	require.NoError(t, svc.DeleteRecruitment(ctx, orgID, rec.ID))
	recs, err = svc.RecruitmentsFor(ctx, orgID, app.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, recs)

	assert.ErrorIs(t, svc.UnlinkApplicant(ctx, orgID, rec.ID, app.ID), apperr.ErrNotFound)
}

func TestStoreInterviewForeignInterviewer(t *testing.T) {
	pool := dbtest.Open(t)
	svc := NewService(NewStore(pool))
	ctx := context.Background()
	orgID := dbtest.Organization(t, pool, "rec-int")
	otherOrg := dbtest.Organization(t, pool, "rec-int-b")
	hrID := dbtest.HR(t, pool, orgID, dbtest.UniqueEmail("int-hr"))
	foreignHR := dbtest.HR(t, pool, otherOrg, dbtest.UniqueEmail("int-hr-b"))
	app, err := svc.CreateApplicant(ctx, orgID, sampleApplicant(dbtest.UniqueEmail("int")))
	require.NoError(t, err)

	_, err = svc.CreateInterview(ctx, orgID, InterviewInsight{ApplicantID: app.ID, InterviewerID: foreignHR})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	i, err := svc.CreateInterview(ctx, orgID, InterviewInsight{ApplicantID: app.ID, InterviewerID: hrID})
	require.NoError(t, err)
	got, err := svc.GetInterview(ctx, orgID, i.ID)
	require.NoError(t, err)
	assert.Nil(t, got.InterviewDate)
}

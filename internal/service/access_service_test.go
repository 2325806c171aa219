package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daheemath/mathtutor-backend/internal/model"
)

type fakeProfiles struct {
	profiles map[uuid.UUID]*model.Profile
}

func (f *fakeProfiles) GetByID(_ context.Context, id uuid.UUID) (*model.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

type fakeGrants struct {
	grants map[uuid.UUID][]uuid.UUID
	err    error
}

func (f *fakeGrants) Exists(_ context.Context, userID, lectureID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, id := range f.grants[userID] {
		if id == lectureID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGrants) ListLectureIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.grants[userID], nil
}

func newAccessFixture() (*AccessService, *fakeProfiles, *fakeGrants) {
	profiles := &fakeProfiles{profiles: map[uuid.UUID]*model.Profile{}}
	grants := &fakeGrants{grants: map[uuid.UUID][]uuid.UUID{}}
	return NewAccessService(profiles, grants), profiles, grants
}

func addProfile(f *fakeProfiles, role model.Role, allAccess bool) uuid.UUID {
	id := uuid.New()
	f.profiles[id] = &model.Profile{ID: id, Role: role, AllAccess: allAccess}
	return id
}

func TestCanAccessAdminAlwaysAllowed(t *testing.T) {
	svc, profiles, _ := newAccessFixture()
	admin := addProfile(profiles, model.RoleAdmin, false)

	assert.True(t, svc.CanAccess(context.Background(), admin, uuid.New()))
}

func TestCanAccessAllAccessFlag(t *testing.T) {
	svc, profiles, _ := newAccessFixture()
	student := addProfile(profiles, model.RoleStudent, true)

	assert.True(t, svc.CanAccess(context.Background(), student, uuid.New()))
}

func TestCanAccessGrantRow(t *testing.T) {
	svc, profiles, grants := newAccessFixture()
	student := addProfile(profiles, model.RoleStudent, false)
	lecture := uuid.New()
	grants.grants[student] = []uuid.UUID{lecture}

	assert.True(t, svc.CanAccess(context.Background(), student, lecture))
	assert.False(t, svc.CanAccess(context.Background(), student, uuid.New()))
}

func TestCanAccessUnknownUserDenied(t *testing.T) {
	svc, _, _ := newAccessFixture()

	assert.False(t, svc.CanAccess(context.Background(), uuid.New(), uuid.New()))
}

func TestCanAccessGrantLookupErrorDenies(t *testing.T) {
	svc, profiles, grants := newAccessFixture()
	student := addProfile(profiles, model.RoleStudent, false)
	grants.err = errors.New("connection refused")

	assert.False(t, svc.CanAccess(context.Background(), student, uuid.New()))
}

func TestAccessibleSetMatchesSingleChecks(t *testing.T) {
	svc, profiles, grants := newAccessFixture()

	lectures := make([]model.Lecture, 4)
	for i := range lectures {
		lectures[i] = model.Lecture{ID: uuid.New()}
	}

	admin := addProfile(profiles, model.RoleAdmin, false)
	allAccess := addProfile(profiles, model.RoleStudent, true)
	granted := addProfile(profiles, model.RoleStudent, false)
	grants.grants[granted] = []uuid.UUID{lectures[0].ID, lectures[2].ID}
	denied := addProfile(profiles, model.RoleStudent, false)

	for _, userID := range []uuid.UUID{admin, allAccess, granted, denied} {
		verdicts, err := svc.AccessibleSet(context.Background(), userID, lectures)
		require.NoError(t, err)
		require.Len(t, verdicts, len(lectures))

		for _, l := range lectures {
			assert.Equal(t, svc.CanAccess(context.Background(), userID, l.ID), verdicts[l.ID])
		}
	}
}

func TestAccessibleSetUnknownUserAllFalse(t *testing.T) {
	svc, _, _ := newAccessFixture()
	lectures := []model.Lecture{{ID: uuid.New()}, {ID: uuid.New()}}

	verdicts, err := svc.AccessibleSet(context.Background(), uuid.New(), lectures)
	require.NoError(t, err)
	for _, l := range lectures {
		assert.False(t, verdicts[l.ID])
	}
}

func TestFilterAccessibleKeepsGrantedSubset(t *testing.T) {
	svc, profiles, grants := newAccessFixture()
	student := addProfile(profiles, model.RoleStudent, false)

	lectures := []model.Lecture{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
	grants.grants[student] = []uuid.UUID{lectures[1].ID}

	accessible, err := svc.FilterAccessible(context.Background(), student, lectures)
	require.NoError(t, err)
	require.Len(t, accessible, 1)
	assert.Equal(t, lectures[1].ID, accessible[0].ID)
}

package subject_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/subject"
	dummydb "github.com/trezcool/shule/storage/database/dummy"
	testutil "github.com/trezcool/shule/tests"
)

func setup(t *testing.T) (subject.Repository, subject.Service) {
	t.Helper()
	core.InitValidators()

	db, err := dummydb.Open()
	require.NoError(t, err)

	repo := dummydb.NewSubjectRepository(db)
	return repo, subject.NewService(repo)
}

func Test_repository_CreateSubject(t *testing.T) {
	ctx := context.Background()
	repo, svc := setup(t)

	t.Run("enrollment persisted on create", func(t *testing.T) {
		sub := testutil.CreateSubject(t, repo, "Mathematics", "math101", 7, 1, 2)

		got, err := svc.GetByID(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, got.StudentIDs)

		subs, err := svc.FindByStudent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, sub.ID, subs[0].ID)
	})

	t.Run("empty enrollment on create", func(t *testing.T) {
		sub := testutil.CreateSubject(t, repo, "Physics", "phy101", 7)

		got, err := svc.GetByID(ctx, sub.ID)
		require.NoError(t, err)
		assert.Empty(t, got.StudentIDs)
	})
}

func Test_service_Update(t *testing.T) {
	ctx := context.Background()
	repo, svc := setup(t)

	t.Run("empty fields carried over", func(t *testing.T) {
		orig := testutil.CreateSubject(t, repo, "Mathematics", "math101", 7)

		us := subject.UpdateSubject{Name: "Applied Mathematics", FacultyID: orig.FacultyID}
		require.NoError(t, us.Validate(orig))

		sub, err := svc.Update(ctx, orig.ID, us)
		require.NoError(t, err)
		assert.Equal(t, "Applied Mathematics", sub.Name)
		assert.Equal(t, orig.Code, sub.Code)
		assert.Equal(t, orig.Year, sub.Year)
		assert.Equal(t, orig.Semester, sub.Semester)
		assert.Equal(t, orig.FacultyID, sub.FacultyID)
	})

	t.Run("omitted faculty unassigns", func(t *testing.T) {
		orig := testutil.CreateSubject(t, repo, "Chemistry", "chem101", 7)

		us := subject.UpdateSubject{}
		require.NoError(t, us.Validate(orig))

		sub, err := svc.Update(ctx, orig.ID, us)
		require.NoError(t, err)
		assert.Equal(t, orig.Name, sub.Name)
		assert.Zero(t, sub.FacultyID)
	})
}

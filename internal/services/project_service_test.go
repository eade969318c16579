package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daylist-io/daylist/internal/services"
)

func TestProjectServiceCRUD(t *testing.T) {
	db := openServiceDB(t)
	owner := seedUser(t, db)
	svc, err := services.NewProjectService(db)
	require.NoError(t, err)

	project, err := svc.Create(context.Background(), owner.ID, services.CreateProjectInput{
		Name:        "Q3 launch",
		Description: "Everything for the launch",
	})
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), project.ID.String(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q3 launch", fetched.Name)

	desc := "Trimmed scope"
	updated, err := svc.Update(context.Background(), project.ID.String(), owner.ID, services.UpdateProjectInput{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Q3 launch", updated.Name)
	assert.Equal(t, "Trimmed scope", updated.Description)

	require.NoError(t, svc.Delete(context.Background(), project.ID.String(), owner.ID))

	_, err = svc.Get(context.Background(), project.ID.String(), owner.ID)
	assert.ErrorIs(t, err, services.ErrProjectNotFound)
}

func TestProjectServiceOwnerIsolation(t *testing.T) {
	db := openServiceDB(t)
	owner := seedUser(t, db)
	intruder := seedUser(t, db)
	svc, err := services.NewProjectService(db)
	require.NoError(t, err)

	project, err := svc.Create(context.Background(), owner.ID, services.CreateProjectInput{Name: "Secret"})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), project.ID.String(), intruder.ID)
	assert.ErrorIs(t, err, services.ErrProjectNotFound)

	err = svc.Delete(context.Background(), project.ID.String(), intruder.ID)
	assert.ErrorIs(t, err, services.ErrProjectNotFound)

	projects, total, err := svc.List(context.Background(), intruder.ID, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, projects)
}

func TestProjectServiceListTotals(t *testing.T) {
	db := openServiceDB(t)
	owner := seedUser(t, db)
	svc, err := services.NewProjectService(db)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := svc.Create(context.Background(), owner.ID, services.CreateProjectInput{Name: "Project"})
		require.NoError(t, err)
	}

	projects, total, err := svc.List(context.Background(), owner.ID, 3, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, projects, 3)

	projects, total, err = svc.List(context.Background(), owner.ID, 3, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, projects, 2)
}

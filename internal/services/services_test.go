package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/database/testutil"
	"github.com/daylist-io/daylist/internal/models"
	"github.com/daylist-io/daylist/internal/services"
)

var userSeq int

// seedUser registers an account directly through the user service so tests get
// a realistic hashed-password row.
func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	svc, err := services.NewUserService(db)
	require.NoError(t, err)

	userSeq++
	user, err := svc.Register(context.Background(), services.RegisterInput{
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	return user
}

func openServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.MustOpenTestDB(t)
}

package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/green-citizen/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Action{}))
	return db
}

func seedAction(t *testing.T, db *gorm.DB) (*models.User, *models.Action) {
	t.Helper()
	user := &models.User{
		Username: "chileshe",
		Email:    "chileshe@example.com",
		Password: "hashed",
		District: "Lusaka",
	}
	require.NoError(t, db.Create(user).Error)

	action := &models.Action{
		UserID:            user.ID,
		ActionType:        "tree_planting",
		VideoURL:          "https://cdn.example.com/videos/1/v.mp4",
		GpsLat:            -15.4167,
		GpsLng:            28.2833,
		RecordedAt:        time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		PrivacySetting:    "anonymous",
		VerificationLevel: models.VerificationPending,
		Points:            2,
	}
	require.NoError(t, db.Create(action).Error)
	return user, action
}

func TestInsertPersistsAction(t *testing.T) {
	db := testDB(t)
	user, _ := seedAction(t, db)

	store := NewActionStore(db)
	action := &models.Action{
		UserID:            user.ID,
		ActionType:        "recycling",
		VideoURL:          "https://cdn.example.com/videos/1/r.mp4",
		GpsLat:            1,
		GpsLng:            2,
		RecordedAt:        time.Now().UTC(),
		PrivacySetting:    "public",
		VerificationLevel: models.VerificationPending,
		Points:            2,
	}
	require.NoError(t, store.Insert(context.Background(), action))
	assert.NotZero(t, action.ID)
}

func TestApplyVerificationCreditsPoints(t *testing.T) {
	db := testDB(t)
	user, action := seedAction(t, db)
	store := NewActionStore(db)

	require.NoError(t, store.ApplyVerification(context.Background(), action, models.VerificationVerified))
	assert.Equal(t, models.VerificationVerified, action.VerificationLevel)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, int64(2), fresh.TotalPoints)

	// Champion promotion moves the level but credits nothing further.
	require.NoError(t, store.ApplyVerification(context.Background(), action, models.VerificationChampion))
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, int64(2), fresh.TotalPoints)
}

func TestApplyVerificationStaleReadConflicts(t *testing.T) {
	db := testDB(t)
	user, action := seedAction(t, db)
	store := NewActionStore(db)

	// Two verifiers read the same pending action.
	stale := *action

	require.NoError(t, store.ApplyVerification(context.Background(), action, models.VerificationVerified))

	// The second write loses: its read is stale, so the conditional update
	// matches nothing and no points are credited twice.
	err := store.ApplyVerification(context.Background(), &stale, models.VerificationVerified)
	require.ErrorIs(t, err, ErrVerificationConflict)
	assert.Equal(t, models.VerificationPending, stale.VerificationLevel, "caller's copy untouched on conflict")

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, int64(2), fresh.TotalPoints, "points credited exactly once")

	var freshAction models.Action
	require.NoError(t, db.First(&freshAction, action.ID).Error)
	assert.Equal(t, models.VerificationVerified, freshAction.VerificationLevel)
}

func TestApplyVerificationRejectsInvalidEdge(t *testing.T) {
	db := testDB(t)
	user, action := seedAction(t, db)
	store := NewActionStore(db)

	err := store.ApplyVerification(context.Background(), action, models.VerificationChampion)
	require.Error(t, err)
	assert.Equal(t, models.VerificationPending, action.VerificationLevel)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Zero(t, fresh.TotalPoints)
}

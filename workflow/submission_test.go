package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/green-citizen/api-go/media"
	"github.com/green-citizen/api-go/models"
	"github.com/green-citizen/api-go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploads    []string // "bucket/key"
	failBucket string
}

func (f *fakeStorage) Upload(ctx context.Context, bucket, key, contentType string, data []byte) error {
	if f.failBucket == bucket {
		return errors.New("storage unavailable")
	}
	f.uploads = append(f.uploads, bucket+"/"+key)
	return nil
}

func (f *fakeStorage) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://cdn.example.com/%s/%s", bucket, key)
}

type fakeStore struct {
	inserted []*models.Action
	err      error
}

func (f *fakeStore) Insert(ctx context.Context, action *models.Action) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, action)
	return nil
}

func newService(storage *fakeStorage, store *fakeStore) *SubmissionService {
	svc := NewSubmissionService(storage, store)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }
	return svc
}

func stagePhotos(t *testing.T, d *Draft, names ...string) {
	t.Helper()
	var files []media.File
	for _, n := range names {
		files = append(files, media.File{Name: n, ContentType: "image/jpeg", Size: 512, Data: []byte("img")})
	}
	_, err := d.Media.SelectPhotos(files)
	require.NoError(t, err)
}

func TestSubmitPersistsPendingRecord(t *testing.T) {
	storage := &fakeStorage{}
	store := &fakeStore{}
	svc := newService(storage, store)

	d := validDraft(t)
	d.Description = "planted ten seedlings"
	stagePhotos(t, d, "one.jpg", "two.jpg")

	action, err := svc.Submit(context.Background(), d, 7)
	require.NoError(t, err)
	require.Len(t, store.inserted, 1)

	assert.Equal(t, uint(7), action.UserID)
	assert.Equal(t, "tree_planting", action.ActionType)
	assert.Equal(t, models.VerificationPending, action.VerificationLevel)
	assert.Equal(t, 2, action.Points)
	require.NotNil(t, action.Description)
	assert.Equal(t, "planted ten seedlings", *action.Description)
	assert.Equal(t, -15.4167, action.GpsLat)
	assert.Equal(t, 28.2833, action.GpsLng)

	// Video key is namespaced by user and timestamp
	assert.True(t, strings.HasPrefix(action.VideoURL, "https://cdn.example.com/videos/7/"), action.VideoURL)
	assert.Contains(t, action.VideoURL, "evidence.mp4")

	// Photo URLs preserve selection order
	require.Len(t, action.PhotoURLs, 2)
	assert.Contains(t, action.PhotoURLs[0], "one.jpg")
	assert.Contains(t, action.PhotoURLs[1], "two.jpg")
	for _, u := range action.PhotoURLs {
		assert.True(t, strings.HasPrefix(u, "https://cdn.example.com/photos/7/"), u)
	}

	// Photo keys get a random component, so same-name files cannot collide
	assert.NotEqual(t, action.PhotoURLs[0], action.PhotoURLs[1])
	assert.Len(t, storage.uploads, 3)
}

func TestSubmitResolvesCustomActionType(t *testing.T) {
	svc := newService(&fakeStorage{}, &fakeStore{})

	d := validDraft(t)
	d.ActionType = types.ActionOther
	d.CustomAction = " Solar panel installation "

	action, err := svc.Submit(context.Background(), d, 1)
	require.NoError(t, err)
	assert.Equal(t, " Solar panel installation ", action.ActionType, "custom text persists verbatim")
	assert.NotEqual(t, "other", action.ActionType)
}

func TestSubmitOmitsEmptyOptionalFields(t *testing.T) {
	svc := newService(&fakeStorage{}, &fakeStore{})

	action, err := svc.Submit(context.Background(), validDraft(t), 1)
	require.NoError(t, err)
	assert.Nil(t, action.Description, "empty description stored as absent")
	assert.Nil(t, action.PhotoURLs, "no photos stored as absent, not empty list")
}

func TestSubmitBlockedByValidationBeforeAnyUpload(t *testing.T) {
	storage := &fakeStorage{}
	store := &fakeStore{}
	svc := newService(storage, store)

	d := validDraft(t)
	d.ActionType = types.ActionOther
	d.CustomAction = ""

	_, err := svc.Submit(context.Background(), d, 1)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "custom_action", validation.Field)
	assert.Empty(t, storage.uploads, "validation errors never reach the network")
	assert.Empty(t, store.inserted)
}

func TestSubmitVideoUploadFailureAbortsEverything(t *testing.T) {
	storage := &fakeStorage{failBucket: VideosBucket}
	store := &fakeStore{}
	svc := newService(storage, store)

	_, err := svc.Submit(context.Background(), validDraft(t), 1)
	var upload *UploadError
	require.ErrorAs(t, err, &upload)
	assert.Equal(t, VideosBucket, upload.Bucket)
	assert.Empty(t, store.inserted, "no partial record on failure")
}

func TestSubmitPhotoUploadFailureAbortsPersist(t *testing.T) {
	storage := &fakeStorage{failBucket: PhotosBucket}
	store := &fakeStore{}
	svc := newService(storage, store)

	d := validDraft(t)
	stagePhotos(t, d, "p.jpg")

	_, err := svc.Submit(context.Background(), d, 1)
	var upload *UploadError
	require.ErrorAs(t, err, &upload)
	assert.Equal(t, PhotosBucket, upload.Bucket)
	assert.Empty(t, store.inserted)

	// The already-uploaded video blob stays behind; no compensating delete.
	assert.Len(t, storage.uploads, 1)
	assert.True(t, strings.HasPrefix(storage.uploads[0], "videos/"))
}

func TestSubmitPersistFailureLeavesNoRecord(t *testing.T) {
	storage := &fakeStorage{}
	store := &fakeStore{err: errors.New("connection reset")}
	svc := newService(storage, store)

	_, err := svc.Submit(context.Background(), validDraft(t), 1)
	var persist *PersistError
	require.ErrorAs(t, err, &persist)
	assert.Empty(t, store.inserted)
}

func TestSubmitUsesRecordedInstantNotNow(t *testing.T) {
	svc := newService(&fakeStorage{}, &fakeStore{})

	d := validDraft(t)
	d.RecordedDate = "2026-01-02"
	d.RecordedTime = "07:15"

	action, err := svc.Submit(context.Background(), d, 1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 2, 7, 15, 0, 0, time.UTC), action.RecordedAt)
}

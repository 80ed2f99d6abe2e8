package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/green-citizen/api-go/models"
	"github.com/green-citizen/api-go/types"
	"github.com/lib/pq"
)

const (
	VideosBucket = "videos"
	PhotosBucket = "photos"
)

// ObjectStorage is the durable media store (S3/R2 behind two logical
// buckets).
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, key, contentType string, data []byte) error
	PublicURL(bucket, key string) string
}

// ActionStore persists finished action records.
type ActionStore interface {
	Insert(ctx context.Context, action *models.Action) error
}

// UploadError is a collaborator failure while pushing media to storage.
type UploadError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s/%s: %v", e.Bucket, e.Key, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// PersistError is a collaborator failure while inserting the record.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string { return fmt.Sprintf("persist action: %v", e.Err) }
func (e *PersistError) Unwrap() error { return e.Err }

// SubmissionService drives a validated draft through upload and persist.
//
// Media uploaded before a later step fails is not cleaned up; the orphaned
// blob is accepted for this best-effort logging tool.
type SubmissionService struct {
	Storage ObjectStorage
	Store   ActionStore

	now func() time.Time
}

func NewSubmissionService(storage ObjectStorage, store ActionStore) *SubmissionService {
	return &SubmissionService{Storage: storage, Store: store, now: time.Now}
}

// Submit uploads the staged video and photos, then persists one action
// record with verification pending and the fixed initial points. Steps run
// in order and each one's failure aborts the rest, so a failed submission
// never leaves a partial record in the store.
func (s *SubmissionService) Submit(ctx context.Context, draft *Draft, userID uint) (*models.Action, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	video := draft.Media.Video()
	videoKey := fmt.Sprintf("%d/%d_%s", userID, s.now().UnixMilli(), video.File.Name)
	if err := s.Storage.Upload(ctx, VideosBucket, videoKey, video.File.ContentType, video.File.Data); err != nil {
		return nil, &UploadError{Bucket: VideosBucket, Key: videoKey, Err: err}
	}
	videoURL := s.Storage.PublicURL(VideosBucket, videoKey)

	var photoURLs []string
	for _, photo := range draft.Media.Photos() {
		photoKey := fmt.Sprintf("%d/%d_%s_%s", userID, s.now().UnixMilli(), uuid.New().String(), photo.File.Name)
		if err := s.Storage.Upload(ctx, PhotosBucket, photoKey, photo.File.ContentType, photo.File.Data); err != nil {
			return nil, &UploadError{Bucket: PhotosBucket, Key: photoKey, Err: err}
		}
		photoURLs = append(photoURLs, s.Storage.PublicURL(PhotosBucket, photoKey))
	}

	recordedAt, err := draft.RecordedAtUTC()
	if err != nil {
		return nil, &ValidationError{Field: "recorded_at", Msg: "invalid date or time"}
	}

	action := &models.Action{
		UserID:            userID,
		ActionType:        draft.EffectiveActionType(),
		VideoURL:          videoURL,
		GpsLat:            *draft.GpsLat,
		GpsLng:            *draft.GpsLng,
		RecordedAt:        recordedAt,
		PrivacySetting:    string(draft.Privacy),
		VerificationLevel: models.VerificationPending,
		Points:            types.GetPointsConfig().ActionLoggedPoints,
	}
	if draft.Description != "" {
		desc := draft.Description
		action.Description = &desc
	}
	if len(photoURLs) > 0 {
		action.PhotoURLs = pq.StringArray(photoURLs)
	}

	if err := s.Store.Insert(ctx, action); err != nil {
		return nil, &PersistError{Err: err}
	}
	return action, nil
}

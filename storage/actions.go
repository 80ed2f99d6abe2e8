package storage

import (
	"context"
	"errors"

	"github.com/green-citizen/api-go/models"
	"gorm.io/gorm"
)

// ErrVerificationConflict means the action's verification level changed
// between the caller's read and the update, e.g. two verifiers racing the
// same edge. The caller reloads and retries.
var ErrVerificationConflict = errors.New("verification level changed concurrently")

// ActionStore persists action records through gorm.
type ActionStore struct {
	DB *gorm.DB
}

func NewActionStore(db *gorm.DB) *ActionStore {
	return &ActionStore{DB: db}
}

func (s *ActionStore) Insert(ctx context.Context, action *models.Action) error {
	return s.DB.WithContext(ctx).Create(action).Error
}

// ApplyVerification moves an action along one guarded state-machine edge
// and, on the edge into verified, credits the action's points to the
// owner's denormalized total. The update is conditional on the level the
// caller read, so a concurrent transition cannot be applied twice or
// double-credit points.
func (s *ActionStore) ApplyVerification(ctx context.Context, action *models.Action, next models.VerificationLevel) error {
	next, err := models.Transition(action.VerificationLevel, next)
	if err != nil {
		return err
	}

	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	res := tx.Model(&models.Action{}).
		Where("id = ? AND verification_level = ?", action.ID, action.VerificationLevel).
		Update("verification_level", next)
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return ErrVerificationConflict
	}

	// Points count once, on the pending -> verified edge.
	if next == models.VerificationVerified {
		if err := tx.Model(&models.User{}).Where("id = ?", action.UserID).
			Update("total_points", gorm.Expr("total_points + ?", action.Points)).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	action.VerificationLevel = next
	return nil
}

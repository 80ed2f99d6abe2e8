package workflow

import (
	"context"

	"github.com/green-citizen/api-go/models"
	"gorm.io/gorm"
)

// Summary rolls a set of action records into the dashboard numbers.
type Summary struct {
	TotalActions   int `json:"total_actions"`
	VerifiedPoints int `json:"verified_points"`
	PendingActions int `json:"pending_actions"`
}

// Summarize is pure: verified points sum the points of exactly the records
// whose verification level is verified or champion.
func Summarize(actions []models.Action) Summary {
	var s Summary
	s.TotalActions = len(actions)
	for _, a := range actions {
		if a.VerificationLevel.Counted() {
			s.VerifiedPoints += a.Points
		}
		if a.VerificationLevel == models.VerificationPending {
			s.PendingActions++
		}
	}
	return s
}

// Aggregator recomputes summaries from the store on each view. No caching.
type Aggregator struct {
	DB *gorm.DB
}

func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{DB: db}
}

func (a *Aggregator) UserSummary(ctx context.Context, userID uint) (Summary, error) {
	var actions []models.Action
	err := a.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&actions).Error
	if err != nil {
		return Summary{}, err
	}
	return Summarize(actions), nil
}

func (a *Aggregator) DistrictSummary(ctx context.Context, district string) (Summary, error) {
	var actions []models.Action
	err := a.DB.WithContext(ctx).
		Select("actions.*").
		Joins("JOIN users ON users.id = actions.user_id").
		Where("users.district = ?", district).
		Find(&actions).Error
	if err != nil {
		return Summary{}, err
	}
	return Summarize(actions), nil
}

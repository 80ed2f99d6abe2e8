// Package workflow owns the action-submission pipeline: the in-progress
// draft held by the open form, the upload-then-persist submission service,
// and the read-side dashboard aggregation.
package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/green-citizen/api-go/geolocation"
	"github.com/green-citizen/api-go/media"
	"github.com/green-citizen/api-go/types"
)

// ValidationError names the draft field that blocks submission. These never
// reach storage or the database; the user edits the field and retries.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Draft is the in-progress action record, exclusively owned by the open
// form. No side effects happen until the draft is handed to Submit.
type Draft struct {
	ActionType   types.ActionType
	CustomAction string
	Description  string
	RecordedDate string // 2006-01-02
	RecordedTime string // 15:04
	Privacy      types.PrivacySetting
	GpsLat       *float64
	GpsLng       *float64
	Media        *media.Selector
}

// NewDraft returns an empty draft with the form defaults: tree planting,
// anonymous, and the current date and time.
func NewDraft(now time.Time) *Draft {
	d := &Draft{Media: media.NewSelector()}
	d.reset(now)
	return d
}

func (d *Draft) reset(now time.Time) {
	d.ActionType = types.ActionTreePlanting
	d.CustomAction = ""
	d.Description = ""
	d.RecordedDate = now.Format("2006-01-02")
	d.RecordedTime = now.Format("15:04")
	d.Privacy = types.PrivacyAnonymous
	d.GpsLat = nil
	d.GpsLng = nil
	d.Media.Reset()
}

// Reset restores the initial empty state, e.g. after the success
// confirmation delay.
func (d *Draft) Reset(now time.Time) {
	d.reset(now)
}

// Open captures a coordinate when the form opens without one already held.
// Capture failures are returned for display but leave the draft usable; the
// user may recapture.
func (d *Draft) Open(ctx context.Context, capturer *geolocation.Capturer) error {
	if d.GpsLat != nil && d.GpsLng != nil {
		return nil
	}
	return d.CaptureLocation(ctx, capturer)
}

// CaptureLocation performs a single location read and stores both
// coordinates, keeping the both-or-neither invariant.
func (d *Draft) CaptureLocation(ctx context.Context, capturer *geolocation.Capturer) error {
	pos, err := capturer.Capture(ctx)
	if err != nil {
		return err
	}
	d.SetCoordinates(pos.Latitude, pos.Longitude)
	return nil
}

func (d *Draft) SetCoordinates(lat, lng float64) {
	d.GpsLat = &lat
	d.GpsLng = &lng
}

// EffectiveActionType resolves "other" to the user's custom text, persisted
// verbatim. Trimming happens only in validation's emptiness check.
func (d *Draft) EffectiveActionType() string {
	if d.ActionType == types.ActionOther {
		return d.CustomAction
	}
	return string(d.ActionType)
}

// RecordedAtUTC combines the recorded date and time into one UTC instant.
func (d *Draft) RecordedAtUTC() (time.Time, error) {
	return time.Parse("2006-01-02T15:04", d.RecordedDate+"T"+d.RecordedTime)
}

// Validate gates submission. Every check is client-side recoverable; the
// first failing field is reported.
func (d *Draft) Validate() error {
	if !d.ActionType.Valid() {
		return &ValidationError{Field: "action_type", Msg: "unknown action type"}
	}
	if d.ActionType == types.ActionOther {
		if strings.TrimSpace(d.CustomAction) == "" {
			return &ValidationError{Field: "custom_action", Msg: "please describe what you did"}
		}
		// Limits count characters, not bytes
		if utf8.RuneCountInString(d.CustomAction) > types.CUSTOM_ACTION_MAX_LEN {
			return &ValidationError{Field: "custom_action", Msg: fmt.Sprintf("must be at most %d characters", types.CUSTOM_ACTION_MAX_LEN)}
		}
	}
	if utf8.RuneCountInString(d.Description) > types.DESCRIPTION_MAX_LEN {
		return &ValidationError{Field: "description", Msg: fmt.Sprintf("must be at most %d characters", types.DESCRIPTION_MAX_LEN)}
	}
	if !d.Privacy.Valid() {
		return &ValidationError{Field: "privacy_setting", Msg: "unknown privacy setting"}
	}
	if _, err := d.RecordedAtUTC(); err != nil {
		return &ValidationError{Field: "recorded_at", Msg: "invalid date or time"}
	}
	if d.Media.Video() == nil {
		return &ValidationError{Field: "video", Msg: "video is required"}
	}
	if d.GpsLat == nil || d.GpsLng == nil {
		return &ValidationError{Field: "location", Msg: "location is required, please enable geolocation"}
	}
	return nil
}

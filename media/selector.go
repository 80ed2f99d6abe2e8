package media

import (
	"fmt"
	"sync"
)

// StagedVideo is the single accepted video awaiting submission.
type StagedVideo struct {
	File    File
	Preview *Preview
}

// StagedPhoto is one accepted photo awaiting submission.
type StagedPhoto struct {
	File    File
	Preview *Preview
}

// Selector validates and stages media for one open action form. At most one
// video and five photos are staged at a time; photos keep selection order.
type Selector struct {
	mu     sync.Mutex
	video  *StagedVideo
	photos []*StagedPhoto
}

func NewSelector() *Selector {
	return &Selector{}
}

// SelectVideo validates f and stages it, replacing any previously staged
// video. The replaced video's pending preview is cancelled.
func (s *Selector) SelectVideo(f File) (*StagedVideo, error) {
	if err := videoError(f); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.video != nil {
		s.video.Preview.Cancel()
	}
	s.video = &StagedVideo{File: f, Preview: newPreview(f)}
	return s.video, nil
}

// SelectPhotos validates each file independently and stages the valid ones
// in order. A file failing type or size validation fails that member only;
// files past the 5-photo cap are rejected without touching what is already
// staged. The returned error, if any, lists every rejection.
func (s *Selector) SelectPhotos(files []File) ([]*StagedPhoto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var staged []*StagedPhoto
	var rejected []*Error
	for _, f := range files {
		if err := photoError(f); err != nil {
			rejected = append(rejected, err)
			continue
		}
		if len(s.photos) >= MaxPhotos {
			rejected = append(rejected, &Error{
				Kind: ErrCount,
				File: f.Name,
				Msg:  fmt.Sprintf("maximum %d photos allowed", MaxPhotos),
			})
			continue
		}
		photo := &StagedPhoto{File: f, Preview: newPreview(f)}
		s.photos = append(s.photos, photo)
		staged = append(staged, photo)
	}

	if len(rejected) > 0 {
		return staged, &BatchError{Errors: rejected}
	}
	return staged, nil
}

// RemovePhoto drops the photo at index i; photos above it shift down. Its
// pending preview is cancelled.
func (s *Selector) RemovePhoto(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.photos) {
		return fmt.Errorf("no staged photo at index %d", i)
	}
	s.photos[i].Preview.Cancel()
	s.photos = append(s.photos[:i], s.photos[i+1:]...)
	return nil
}

// Video returns the staged video, or nil when none is staged.
func (s *Selector) Video() *StagedVideo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.video
}

// Photos returns the staged photos in selection order.
func (s *Selector) Photos() []*StagedPhoto {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*StagedPhoto, len(s.photos))
	copy(out, s.photos)
	return out
}

// Reset clears everything staged, cancelling pending previews.
func (s *Selector) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.video != nil {
		s.video.Preview.Cancel()
		s.video = nil
	}
	for _, p := range s.photos {
		p.Preview.Cancel()
	}
	s.photos = nil
}

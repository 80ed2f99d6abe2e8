package media

import (
	"context"
	"encoding/base64"
	"fmt"
)

// Preview is the locally renderable representation of a staged file,
// produced asynchronously per file. Removing a file before its preview
// resolves cancels the task, so a late preview can never race back into
// the staged list.
type Preview struct {
	cancel  context.CancelFunc
	done    chan struct{}
	dataURL string
	err     error
}

func newPreview(f File) *Preview {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Preview{cancel: cancel, done: make(chan struct{})}
	go p.render(ctx, f)
	return p
}

func (p *Preview) render(ctx context.Context, f File) {
	defer close(p.done)
	select {
	case <-ctx.Done():
		p.err = ctx.Err()
		return
	default:
	}
	encoded := base64.StdEncoding.EncodeToString(f.Data)
	if err := ctx.Err(); err != nil {
		p.err = err
		return
	}
	p.dataURL = fmt.Sprintf("data:%s;base64,%s", f.ContentType, encoded)
}

// Wait blocks until the preview resolves, is cancelled, or ctx expires.
func (p *Preview) Wait(ctx context.Context) (string, error) {
	select {
	case <-p.done:
		return p.dataURL, p.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Cancel abandons an unresolved preview. Safe to call more than once.
func (p *Preview) Cancel() {
	p.cancel()
}

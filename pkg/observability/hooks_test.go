package observability

import (
	"context"
	"testing"
	"time"
)

type recordingStoreHooks struct {
	loads, saves, submits int
}

func (r *recordingStoreHooks) OnLoad(context.Context, string, int, time.Duration, error) {
	r.loads++
}
func (r *recordingStoreHooks) OnSave(context.Context, string, int, time.Duration, error) {
	r.saves++
}
func (r *recordingStoreHooks) OnSubmit(context.Context, string, string, error) {
	r.submits++
}

type recordingGlyphHooks struct {
	generates int
}

func (r *recordingGlyphHooks) OnGenerate(context.Context, string, int) {
	r.generates++
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// No-op hooks must never panic.
	Store().OnLoad(ctx, "file", 3, time.Millisecond, nil)
	Store().OnSave(ctx, "file", 3, time.Millisecond, nil)
	Store().OnSubmit(ctx, "file", "2024-01-01", nil)
	Glyph().OnGenerate(ctx, "2024-01-01", 200)
}

func TestSetHooks(t *testing.T) {
	defer Reset()
	ctx := context.Background()

	sh := &recordingStoreHooks{}
	gh := &recordingGlyphHooks{}
	SetStoreHooks(sh)
	SetGlyphHooks(gh)

	Store().OnLoad(ctx, "file", 1, 0, nil)
	Store().OnSubmit(ctx, "file", "2024-01-01", nil)
	Glyph().OnGenerate(ctx, "2024-01-01", 10)

	if sh.loads != 1 || sh.submits != 1 {
		t.Errorf("store hooks not invoked: %+v", sh)
	}
	if gh.generates != 1 {
		t.Errorf("glyph hooks not invoked: %+v", gh)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	sh := &recordingStoreHooks{}
	SetStoreHooks(sh)
	SetStoreHooks(nil)

	Store().OnSave(context.Background(), "file", 0, 0, nil)
	if sh.saves != 1 {
		t.Error("SetStoreHooks(nil) should keep the registered hooks")
	}
}

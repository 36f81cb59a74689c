package damage

import "testing"

func TestOptionsApplyInOrder(t *testing.T) {
	cfg := DefaultConfig()
	opts := []Option{
		WithHistoryCapacity(3),
		WithConfig(Config{HistoryCapacity: 7, FallbackAge: 1, Width: 10, Height: 20}),
		WithFallbackAge(5),
		WithSurfaceSize(640, 480),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	want := Config{HistoryCapacity: 7, FallbackAge: 5, Width: 640, Height: 480}
	if cfg != want {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}
}

func TestNewDriverRejectsInvalidOptions(t *testing.T) {
	s := newFakeSurface()
	if _, err := NewDriver(s.hooks(), WithHistoryCapacity(0)); err == nil {
		t.Error("NewDriver() with zero capacity should fail")
	}
	if _, err := NewDriver(s.hooks(), WithFallbackAge(-1)); err == nil {
		t.Error("NewDriver() with negative fallback age should fail")
	}
}

package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testDispatcher(reg *Registry) *Dispatcher {
	return NewDispatcher(reg, 8, zap.NewNop())
}

func TestRefreshPartialFailureIsolation(t *testing.T) {
	reg := NewRegistry()
	reg.Register(WidgetMetric, func(ctx context.Context, config map[string]interface{}, req FetchRequest) (interface{}, error) {
		return map[string]interface{}{"value": 42}, nil
	})
	reg.Register(WidgetChart, func(ctx context.Context, config map[string]interface{}, req FetchRequest) (interface{}, error) {
		return nil, errors.New("aggregation pipeline failed")
	})

	widgets := []Widget{
		{ID: "w1", Type: WidgetMetric},
		{ID: "w2", Type: WidgetChart},
		{ID: "w3", Type: WidgetMetric},
	}

	out := testDispatcher(reg).Refresh(context.Background(), widgets, FetchRequest{})

	if len(out) != 3 {
		t.Fatalf("Refresh() returned %d widgets, want 3", len(out))
	}
	if out[0].Error != "" || out[0].Data == nil {
		t.Errorf("w1 should have data, got error %q", out[0].Error)
	}
	if out[1].Error == "" || out[1].Data != nil {
		t.Errorf("w2 should carry its own error, got data %v", out[1].Data)
	}
	if out[2].Error != "" || out[2].Data == nil {
		t.Errorf("w3 should be unaffected by w2's failure, got error %q", out[2].Error)
	}
}

func TestRefreshPreservesOrderDespiteCompletionOrder(t *testing.T) {
	reg := NewRegistry()
	// The second widget completes last; output order must still match input.
	reg.Register(WidgetMetric, func(ctx context.Context, config map[string]interface{}, req FetchRequest) (interface{}, error) {
		if slow, _ := config["slow"].(bool); slow {
			time.Sleep(50 * time.Millisecond)
		}
		return config["name"], nil
	})

	widgets := []Widget{
		{ID: "w1", Type: WidgetMetric, Config: map[string]interface{}{"name": "first"}},
		{ID: "w2", Type: WidgetMetric, Config: map[string]interface{}{"name": "second", "slow": true}},
		{ID: "w3", Type: WidgetMetric, Config: map[string]interface{}{"name": "third"}},
	}

	out := testDispatcher(reg).Refresh(context.Background(), widgets, FetchRequest{})

	want := []string{"first", "second", "third"}
	for i, name := range want {
		if out[i].Data != name {
			t.Errorf("out[%d].Data = %v, want %q", i, out[i].Data, name)
		}
	}
}

func TestRefreshUnknownTypeGetsWidgetError(t *testing.T) {
	reg := NewRegistry()
	reg.Register(WidgetMetric, func(ctx context.Context, config map[string]interface{}, req FetchRequest) (interface{}, error) {
		return 1, nil
	})

	widgets := []Widget{
		{ID: "w1", Type: WidgetType("hologram")},
		{ID: "w2", Type: WidgetMetric},
	}

	out := testDispatcher(reg).Refresh(context.Background(), widgets, FetchRequest{})

	if !strings.Contains(out[0].Error, "unsupported widget type") {
		t.Errorf("unknown type error = %q, want unsupported-type message", out[0].Error)
	}
	if out[1].Error != "" {
		t.Errorf("known widget should succeed, got %q", out[1].Error)
	}
}

func TestRefreshNeverReportsLoading(t *testing.T) {
	reg := NewRegistry()
	reg.Register(WidgetMetric, func(ctx context.Context, config map[string]interface{}, req FetchRequest) (interface{}, error) {
		return 1, nil
	})

	widgets := []Widget{
		{ID: "w1", Type: WidgetMetric, Loading: true},
		{ID: "w2", Type: WidgetType("hologram"), Loading: true},
	}

	out := testDispatcher(reg).Refresh(context.Background(), widgets, FetchRequest{})
	for i := range out {
		if out[i].Loading {
			t.Errorf("out[%d].Loading = true in final response", i)
		}
	}
}

func TestRefreshCancelledContextReportsTimeoutClassError(t *testing.T) {
	reg := NewRegistry()
	reg.Register(WidgetMetric, func(ctx context.Context, config map[string]interface{}, req FetchRequest) (interface{}, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	widgets := []Widget{{ID: "w1", Type: WidgetMetric}}
	out := testDispatcher(reg).Refresh(ctx, widgets, FetchRequest{})

	if len(out) != 1 {
		t.Fatalf("cancelled widget must not be omitted, got %d results", len(out))
	}
	if !strings.Contains(out[0].Error, "timed out") {
		t.Errorf("error = %q, want timeout-class message", out[0].Error)
	}
}

func TestRefreshPassesFiltersAndDateRangeThrough(t *testing.T) {
	reg := NewRegistry()
	var gotReq FetchRequest
	reg.Register(WidgetMetric, func(ctx context.Context, config map[string]interface{}, req FetchRequest) (interface{}, error) {
		gotReq = req
		return 1, nil
	})

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	req := FetchRequest{
		Filters:   map[string]interface{}{"dojaang_id": "abc"},
		DateRange: DateRange{Start: start},
	}

	testDispatcher(reg).Refresh(context.Background(), []Widget{{ID: "w1", Type: WidgetMetric}}, req)

	if gotReq.Filters["dojaang_id"] != "abc" {
		t.Errorf("filters not passed through: %v", gotReq.Filters)
	}
	if !gotReq.DateRange.Start.Equal(start) {
		t.Errorf("date range not passed through: %v", gotReq.DateRange)
	}
}

func TestRefreshBoundedFanout(t *testing.T) {
	reg := NewRegistry()
	inFlight := make(chan struct{}, 64)
	max := 0
	done := make(chan int, 64)
	reg.Register(WidgetMetric, func(ctx context.Context, config map[string]interface{}, req FetchRequest) (interface{}, error) {
		inFlight <- struct{}{}
		time.Sleep(5 * time.Millisecond)
		n := len(inFlight)
		<-inFlight
		done <- n
		return 1, nil
	})

	widgets := make([]Widget, 20)
	for i := range widgets {
		widgets[i] = Widget{ID: "w", Type: WidgetMetric}
	}

	d := NewDispatcher(reg, 4, zap.NewNop())
	d.Refresh(context.Background(), widgets, FetchRequest{})
	close(done)
	for n := range done {
		if n > max {
			max = n
		}
	}
	if max > 4 {
		t.Errorf("observed %d concurrent fetches, fanout cap is 4", max)
	}
}

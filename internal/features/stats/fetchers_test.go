package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/class"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/dashboard"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/payment"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/promotion"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/student"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type stubStudents struct {
	count     int64
	byRank    []student.RankCount
	recent    []student.Student
	gotFilter bson.M
}

func (s *stubStudents) Count(_ context.Context, filter bson.M) (int64, error) {
	s.gotFilter = filter
	return s.count, nil
}

func (s *stubStudents) CountByRank(_ context.Context, _ bson.M) ([]student.RankCount, error) {
	return s.byRank, nil
}

func (s *stubStudents) Recent(_ context.Context, limit int64) ([]student.Student, error) {
	if limit < int64(len(s.recent)) {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}

type stubCounter struct{ n int64 }

func (s stubCounter) Count(_ context.Context) (int64, error) { return s.n, nil }

type stubSessions struct{ sessions []class.Session }

func (s stubSessions) UpcomingSessions(_ context.Context, _, _ time.Time) ([]class.Session, error) {
	return s.sessions, nil
}

type stubPromotions struct{}

func (stubPromotions) Recent(_ context.Context, _ int64) ([]promotion.Promotion, error) {
	return nil, nil
}

func (stubPromotions) CountByMonth(_ context.Context, _, _ time.Time) ([]promotion.MonthCount, error) {
	return []promotion.MonthCount{{Month: "2026-08", Count: 3}}, nil
}

type stubPayments struct{ total float64 }

func (s stubPayments) Recent(_ context.Context, _ int64) ([]payment.Payment, error) {
	return nil, nil
}

func (s stubPayments) SumInRange(_ context.Context, _, _ time.Time) (float64, error) {
	return s.total, nil
}

func (s stubPayments) SumByMonth(_ context.Context, _, _ time.Time) ([]payment.MonthSum, error) {
	return nil, nil
}

func (s stubPayments) CountByStatus(_ context.Context) ([]payment.StatusCount, error) {
	return nil, nil
}

func testProvider() *Provider {
	return &Provider{
		Students: &stubStudents{
			count: 42,
			byRank: []student.RankCount{
				{Rank: "White", Count: 30},
				{Rank: "Yellow", Count: 10},
			},
		},
		Coaches:    stubCounter{n: 4},
		Dojaangs:   stubCounter{n: 2},
		Classes:    stubCounter{n: 7},
		Sessions:   stubSessions{},
		Promotions: stubPromotions{},
		Payments:   stubPayments{total: 1500.50},
	}
}

func TestFetchMetricSources(t *testing.T) {
	p := testProvider()

	cases := []struct {
		source string
		want   float64
	}{
		{"students", 42},
		{"coaches", 4},
		{"dojaangs", 2},
		{"classes", 7},
		{"revenue", 1500.50},
	}
	for _, tc := range cases {
		t.Run(tc.source, func(t *testing.T) {
			data, err := p.FetchMetric(context.Background(),
				map[string]interface{}{"source": tc.source}, dashboard.FetchRequest{})
			if err != nil {
				t.Fatalf("FetchMetric: %v", err)
			}
			if got := data.(MetricValue).Value; got != tc.want {
				t.Errorf("value = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFetchMetricUnknownSource(t *testing.T) {
	p := testProvider()

	_, err := p.FetchMetric(context.Background(),
		map[string]interface{}{"source": "velocity"}, dashboard.FetchRequest{})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFetchMetricAppliesDojaangFilter(t *testing.T) {
	students := &stubStudents{count: 5}
	p := testProvider()
	p.Students = students

	_, err := p.FetchMetric(context.Background(), nil, dashboard.FetchRequest{
		Filters: map[string]interface{}{"dojaang_id": "64b0c8f2e4b0a1a2b3c4d5e6"},
	})
	if err != nil {
		t.Fatalf("FetchMetric: %v", err)
	}
	if _, ok := students.gotFilter["dojaang_id"]; !ok {
		t.Error("expected dojaang_id in student filter")
	}
	if active, ok := students.gotFilter["is_active"].(bool); !ok || !active {
		t.Error("expected is_active filter")
	}
}

func TestFetchChartPromotionsByMonth(t *testing.T) {
	p := testProvider()

	data, err := p.FetchChart(context.Background(),
		map[string]interface{}{"source": "promotions_by_month"}, dashboard.FetchRequest{})
	if err != nil {
		t.Fatalf("FetchChart: %v", err)
	}
	series := data.(ChartSeries)
	if len(series.Labels) != 1 || series.Labels[0] != "2026-08" {
		t.Errorf("labels = %v", series.Labels)
	}
	if len(series.Values) != 1 || series.Values[0] != 3 {
		t.Errorf("values = %v", series.Values)
	}
}

func TestFetchProgressCoversWholeLadder(t *testing.T) {
	p := testProvider()

	data, err := p.FetchProgress(context.Background(), nil, dashboard.FetchRequest{})
	if err != nil {
		t.Fatalf("FetchProgress: %v", err)
	}
	items := data.([]ProgressItem)
	if len(items) != len(student.Ranks) {
		t.Fatalf("got %d items, want one per rank (%d)", len(items), len(student.Ranks))
	}
	if items[0].Label != "White" || items[0].Value != 30 {
		t.Errorf("first item = %+v", items[0])
	}
	if items[0].Ratio != 0.75 {
		t.Errorf("white ratio = %v, want 0.75", items[0].Ratio)
	}
	// ranks with no students still appear with a zero bar
	if items[len(items)-1].Value != 0 {
		t.Errorf("expected empty top rank bucket, got %+v", items[len(items)-1])
	}
}

func TestFetchListLimit(t *testing.T) {
	students := &stubStudents{recent: make([]student.Student, 25)}
	p := testProvider()
	p.Students = students

	data, err := p.FetchList(context.Background(),
		map[string]interface{}{"limit": float64(5)}, dashboard.FetchRequest{})
	if err != nil {
		t.Fatalf("FetchList: %v", err)
	}
	if got := len(data.([]student.Student)); got != 5 {
		t.Errorf("got %d rows, want 5", got)
	}

	data, err = p.FetchList(context.Background(), nil, dashboard.FetchRequest{})
	if err != nil {
		t.Fatalf("FetchList default: %v", err)
	}
	if got := len(data.([]student.Student)); got != defaultListLimit {
		t.Errorf("got %d rows, want default %d", got, defaultListLimit)
	}
}

func TestRegistryCoversAllWidgetTypes(t *testing.T) {
	reg := NewRegistry(testProvider())
	d := dashboard.NewDispatcher(reg, 4, zap.NewNop())

	widgets := make([]dashboard.Widget, 0, len(dashboard.KnownWidgetTypes))
	for _, wt := range dashboard.KnownWidgetTypes {
		widgets = append(widgets, dashboard.Widget{ID: string(wt), Type: wt})
	}

	out := d.Refresh(context.Background(), widgets, dashboard.FetchRequest{})
	for _, w := range out {
		if w.Error != "" {
			t.Errorf("widget %s failed: %s", w.ID, w.Error)
		}
		if w.Data == nil {
			t.Errorf("widget %s has no data", w.ID)
		}
	}
}

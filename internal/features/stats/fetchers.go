// Package stats backs the dashboard widgets with data from the domain
// repositories. Each widget type gets one fetcher; the widget's config
// picks the concrete source via its "source" key.
package stats

import (
	"context"
	"time"

	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/common/apperr"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/class"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/coach"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/dashboard"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/dojaang"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/payment"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/promotion"
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/features/student"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultListLimit = 10

type StudentSource interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
	CountByRank(ctx context.Context, filter bson.M) ([]student.RankCount, error)
	Recent(ctx context.Context, limit int64) ([]student.Student, error)
}

type CoachSource interface {
	Count(ctx context.Context) (int64, error)
}

type DojaangSource interface {
	Count(ctx context.Context) (int64, error)
}

type ClassSource interface {
	Count(ctx context.Context) (int64, error)
}

type SessionSource interface {
	UpcomingSessions(ctx context.Context, from, to time.Time) ([]class.Session, error)
}

type PromotionSource interface {
	Recent(ctx context.Context, limit int64) ([]promotion.Promotion, error)
	CountByMonth(ctx context.Context, from, to time.Time) ([]promotion.MonthCount, error)
}

type PaymentSource interface {
	Recent(ctx context.Context, limit int64) ([]payment.Payment, error)
	SumInRange(ctx context.Context, from, to time.Time) (float64, error)
	SumByMonth(ctx context.Context, from, to time.Time) ([]payment.MonthSum, error)
	CountByStatus(ctx context.Context) ([]payment.StatusCount, error)
}

// Provider bundles the domain sources the fetchers read from.
type Provider struct {
	Students   StudentSource
	Coaches    CoachSource
	Dojaangs   DojaangSource
	Classes    ClassSource
	Sessions   SessionSource
	Promotions PromotionSource
	Payments   PaymentSource
}

func NewProvider(
	students student.StudentRepository,
	coaches coach.CoachRepository,
	dojaangs dojaang.DojaangRepository,
	classes class.ClassRepository,
	sessions class.ClassService,
	promotions promotion.PromotionRepository,
	payments payment.PaymentRepository,
) *Provider {
	return &Provider{
		Students:   students,
		Coaches:    coaches,
		Dojaangs:   dojaangs,
		Classes:    classes,
		Sessions:   sessions,
		Promotions: promotions,
		Payments:   payments,
	}
}

// NewRegistry returns a widget registry with every widget type wired to
// its fetcher.
func NewRegistry(p *Provider) *dashboard.Registry {
	reg := dashboard.NewRegistry()
	reg.Register(dashboard.WidgetMetric, p.FetchMetric)
	reg.Register(dashboard.WidgetChart, p.FetchChart)
	reg.Register(dashboard.WidgetList, p.FetchList)
	reg.Register(dashboard.WidgetTable, p.FetchList)
	reg.Register(dashboard.WidgetProgress, p.FetchProgress)
	reg.Register(dashboard.WidgetCalendar, p.FetchCalendar)
	reg.Register(dashboard.WidgetCard, p.FetchCard)
	return reg
}

// MetricValue is the payload of a metric widget.
type MetricValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is the payload of a chart widget.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// ProgressItem is one bar of a progress widget.
type ProgressItem struct {
	Label string  `json:"label"`
	Value int64   `json:"value"`
	Ratio float64 `json:"ratio"`
}

// Snapshot is the payload of the school overview card widget.
type Snapshot struct {
	Students int64   `json:"students"`
	Coaches  int64   `json:"coaches"`
	Dojaangs int64   `json:"dojaangs"`
	Classes  int64   `json:"classes"`
	Revenue  float64 `json:"revenue"`
}

func (p *Provider) FetchMetric(ctx context.Context, config map[string]interface{}, req dashboard.FetchRequest) (interface{}, error) {
	source := configString(config, "source", "students")
	from, to := rangeOrDefault(req.DateRange, -30*24*time.Hour)

	switch source {
	case "students":
		n, err := p.Students.Count(ctx, studentFilter(req))
		if err != nil {
			return nil, err
		}
		return MetricValue{Label: "Active students", Value: float64(n)}, nil
	case "coaches":
		n, err := p.Coaches.Count(ctx)
		if err != nil {
			return nil, err
		}
		return MetricValue{Label: "Coaches", Value: float64(n)}, nil
	case "dojaangs":
		n, err := p.Dojaangs.Count(ctx)
		if err != nil {
			return nil, err
		}
		return MetricValue{Label: "Dojaangs", Value: float64(n)}, nil
	case "classes":
		n, err := p.Classes.Count(ctx)
		if err != nil {
			return nil, err
		}
		return MetricValue{Label: "Training classes", Value: float64(n)}, nil
	case "revenue":
		total, err := p.Payments.SumInRange(ctx, from, to)
		if err != nil {
			return nil, err
		}
		return MetricValue{Label: "Revenue", Value: total}, nil
	default:
		return nil, apperr.Validation("unknown metric source %q", source)
	}
}

func (p *Provider) FetchChart(ctx context.Context, config map[string]interface{}, req dashboard.FetchRequest) (interface{}, error) {
	source := configString(config, "source", "students_by_rank")
	from, to := rangeOrDefault(req.DateRange, -365*24*time.Hour)

	switch source {
	case "students_by_rank":
		counts, err := p.Students.CountByRank(ctx, studentFilter(req))
		if err != nil {
			return nil, err
		}
		series := ChartSeries{}
		for _, c := range counts {
			series.Labels = append(series.Labels, c.Rank)
			series.Values = append(series.Values, float64(c.Count))
		}
		return series, nil
	case "promotions_by_month":
		counts, err := p.Promotions.CountByMonth(ctx, from, to)
		if err != nil {
			return nil, err
		}
		series := ChartSeries{}
		for _, c := range counts {
			series.Labels = append(series.Labels, c.Month)
			series.Values = append(series.Values, float64(c.Count))
		}
		return series, nil
	case "revenue_by_month":
		sums, err := p.Payments.SumByMonth(ctx, from, to)
		if err != nil {
			return nil, err
		}
		series := ChartSeries{}
		for _, s := range sums {
			series.Labels = append(series.Labels, s.Month)
			series.Values = append(series.Values, s.Total)
		}
		return series, nil
	case "payments_by_status":
		counts, err := p.Payments.CountByStatus(ctx)
		if err != nil {
			return nil, err
		}
		series := ChartSeries{}
		for _, c := range counts {
			series.Labels = append(series.Labels, c.Status)
			series.Values = append(series.Values, float64(c.Count))
		}
		return series, nil
	default:
		return nil, apperr.Validation("unknown chart source %q", source)
	}
}

func (p *Provider) FetchList(ctx context.Context, config map[string]interface{}, _ dashboard.FetchRequest) (interface{}, error) {
	source := configString(config, "source", "recent_students")
	limit := configInt64(config, "limit", defaultListLimit)

	switch source {
	case "recent_students":
		return p.Students.Recent(ctx, limit)
	case "recent_promotions":
		return p.Promotions.Recent(ctx, limit)
	case "recent_payments":
		return p.Payments.Recent(ctx, limit)
	default:
		return nil, apperr.Validation("unknown list source %q", source)
	}
}

// FetchProgress reports the rank distribution as progress toward the
// top of the ladder.
func (p *Provider) FetchProgress(ctx context.Context, _ map[string]interface{}, req dashboard.FetchRequest) (interface{}, error) {
	counts, err := p.Students.CountByRank(ctx, studentFilter(req))
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}

	byRank := make(map[string]int64, len(counts))
	for _, c := range counts {
		byRank[c.Rank] = c.Count
	}

	items := make([]ProgressItem, 0, len(student.Ranks))
	for _, rank := range student.Ranks {
		item := ProgressItem{Label: rank, Value: byRank[rank]}
		if total > 0 {
			item.Ratio = float64(item.Value) / float64(total)
		}
		items = append(items, item)
	}
	return items, nil
}

func (p *Provider) FetchCalendar(ctx context.Context, _ map[string]interface{}, req dashboard.FetchRequest) (interface{}, error) {
	from, to := req.DateRange.Start, req.DateRange.End
	if from.IsZero() {
		from = time.Now()
	}
	if to.IsZero() {
		to = from.AddDate(0, 0, 7)
	}
	return p.Sessions.UpcomingSessions(ctx, from, to)
}

func (p *Provider) FetchCard(ctx context.Context, _ map[string]interface{}, req dashboard.FetchRequest) (interface{}, error) {
	from, to := rangeOrDefault(req.DateRange, -30*24*time.Hour)

	snap := Snapshot{}
	var err error
	if snap.Students, err = p.Students.Count(ctx, studentFilter(req)); err != nil {
		return nil, err
	}
	if snap.Coaches, err = p.Coaches.Count(ctx); err != nil {
		return nil, err
	}
	if snap.Dojaangs, err = p.Dojaangs.Count(ctx); err != nil {
		return nil, err
	}
	if snap.Classes, err = p.Classes.Count(ctx); err != nil {
		return nil, err
	}
	if snap.Revenue, err = p.Payments.SumInRange(ctx, from, to); err != nil {
		return nil, err
	}
	return snap, nil
}

// studentFilter narrows student reads to one dojaang when the dashboard
// request carries a dojaang_id filter.
func studentFilter(req dashboard.FetchRequest) bson.M {
	filter := bson.M{"is_active": true}
	if raw, ok := req.Filters["dojaang_id"].(string); ok && raw != "" {
		if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
			filter["dojaang_id"] = oid
		}
	}
	return filter
}

func rangeOrDefault(dr dashboard.DateRange, span time.Duration) (time.Time, time.Time) {
	from, to := dr.Start, dr.End
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.Add(span)
	}
	return from, to
}

func configString(config map[string]interface{}, key, fallback string) string {
	if v, ok := config[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func configInt64(config map[string]interface{}, key string, fallback int64) int64 {
	switch v := config[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		// JSON numbers decode as float64
		return int64(v)
	}
	return fallback
}

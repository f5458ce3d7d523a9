package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// FetchRequest carries the request-scoped inputs every fetcher receives.
// Filters and DateRange are passed through opaque, the dispatcher does not
// interpret them.
type FetchRequest struct {
	Filters   map[string]interface{}
	DateRange DateRange
}

// Fetcher produces the data payload for one widget type. Supplied by domain
// services; the widget's Config is handed over uninterpreted.
type Fetcher func(ctx context.Context, config map[string]interface{}, req FetchRequest) (interface{}, error)

// Registry maps widget types to their fetchers. Adding a widget type is a
// registry entry, not a new branch in the dispatch path.
type Registry struct {
	mu       sync.RWMutex
	fetchers map[WidgetType]Fetcher
}

func NewRegistry() *Registry {
	return &Registry{fetchers: make(map[WidgetType]Fetcher)}
}

func (r *Registry) Register(t WidgetType, f Fetcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetchers[t] = f
}

func (r *Registry) lookup(t WidgetType) (Fetcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fetchers[t]
	return f, ok
}

// Dispatcher fans widget data fetches out concurrently, isolating failures
// per widget.
type Dispatcher struct {
	registry *Registry
	fanout   int
	logger   *zap.Logger
}

func NewDispatcher(registry *Registry, fanout int, logger *zap.Logger) *Dispatcher {
	if fanout < 1 {
		fanout = 1
	}
	return &Dispatcher{
		registry: registry,
		fanout:   fanout,
		logger:   logger,
	}
}

// Refresh fetches data for every widget concurrently and returns one result
// per input widget, in input order. A widget's failure only populates that
// widget's Error field; siblings are never cancelled or blocked by it. The
// returned widgets never report Loading.
func (d *Dispatcher) Refresh(ctx context.Context, widgets []Widget, req FetchRequest) []Widget {
	out := make([]Widget, len(widgets))

	sem := make(chan struct{}, d.fanout)
	var wg sync.WaitGroup

	for i, w := range widgets {
		wg.Add(1)
		go func(i int, w Widget) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			out[i] = d.fetchOne(ctx, w, req)
		}(i, w)
	}

	wg.Wait()
	return out
}

func (d *Dispatcher) fetchOne(ctx context.Context, w Widget, req FetchRequest) Widget {
	w.Loading = false
	w.Data = nil
	w.Error = ""

	fetcher, ok := d.registry.lookup(w.Type)
	if !ok {
		w.Error = fmt.Sprintf("unsupported widget type %q", w.Type)
		return w
	}

	if err := ctx.Err(); err != nil {
		w.Error = cancelledMessage(err)
		return w
	}

	data, err := fetcher(ctx, w.Config, req)
	if err != nil {
		// An individual fetcher's failure is downgraded to widget-level state.
		if ctxErr := ctx.Err(); ctxErr != nil {
			w.Error = cancelledMessage(ctxErr)
		} else {
			w.Error = err.Error()
		}
		d.logger.Warn("widget fetch failed",
			zap.String("widget_id", w.ID),
			zap.String("widget_type", string(w.Type)),
			zap.Error(err),
		)
		return w
	}

	w.Data = data
	return w
}

func cancelledMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "widget refresh timed out"
	}
	return "widget refresh cancelled"
}

package dashboard

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WidgetType enumerates the widget kinds the composition engine knows how to
// size and refresh. Anything else degrades to card rendering.
type WidgetType string

const (
	WidgetMetric   WidgetType = "metric"
	WidgetChart    WidgetType = "chart"
	WidgetList     WidgetType = "list"
	WidgetProgress WidgetType = "progress"
	WidgetCard     WidgetType = "card"
	WidgetTable    WidgetType = "table"
	WidgetCalendar WidgetType = "calendar"
)

// KnownWidgetTypes is the fixed set, in a stable order for permission tables.
var KnownWidgetTypes = []WidgetType{
	WidgetMetric, WidgetChart, WidgetList, WidgetProgress,
	WidgetCard, WidgetTable, WidgetCalendar,
}

func (t WidgetType) Known() bool {
	for _, k := range KnownWidgetTypes {
		if t == k {
			return true
		}
	}
	return false
}

// WidgetPosition defines the position and size of a widget in the grid.
// X/Y are placement hints only; overlap is not validated.
type WidgetPosition struct {
	X      int `json:"x" bson:"x"`
	Y      int `json:"y" bson:"y"`
	Width  int `json:"width" bson:"width"` // width in 12-column grid units
	Height int `json:"height" bson:"height"`
}

// GridSize is the responsive column-span tuple for a widget.
type GridSize struct {
	XS int `json:"xs"`
	SM int `json:"sm"`
	MD int `json:"md"`
	LG int `json:"lg"`
}

// Widget is a single typed unit of dashboard content. Data, Loading, Error and
// Size are per-request rendering state and are never persisted.
type Widget struct {
	ID          string                 `json:"id" bson:"id"`
	Type        WidgetType             `json:"type" bson:"type"`
	Title       string                 `json:"title" bson:"title"`
	Description string                 `json:"description,omitempty" bson:"description,omitempty"`
	Position    WidgetPosition         `json:"position" bson:"position"`
	Config      map[string]interface{} `json:"config" bson:"config"` // opaque, interpreted by fetchers only

	Size    GridSize    `json:"size" bson:"-"`
	Data    interface{} `json:"data,omitempty" bson:"-"`
	Loading bool        `json:"loading" bson:"-"`
	Error   string      `json:"error,omitempty" bson:"-"`
}

// DashboardLayout is a named, ordered collection of widgets, owned by a user
// or published as a role-level default. Widgets are embedded, so a widget
// belongs to exactly one layout and delete cascades structurally.
type DashboardLayout struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Widgets     []Widget           `json:"widgets" bson:"widgets"`
	IsDefault   bool               `json:"is_default" bson:"is_default"`
	UserRole    string             `json:"user_role,omitempty" bson:"user_role,omitempty"` // set on role-level defaults
	UserID      primitive.ObjectID `json:"user_id,omitempty" bson:"user_id,omitempty"`     // owner of personal layouts
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Identity is the authenticated caller fact the composition service works
// from: resolved upstream by the auth middleware.
type Identity struct {
	UserID string
	Role   string
}

// DateRange bounds the data a fetcher aggregates over. Zero values mean
// unbounded; the engine passes it through without interpreting it.
type DateRange struct {
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`
}

// DashboardRequest asks for a composed dashboard. LayoutID, when set, is
// authoritative; otherwise the selector falls back personal -> role default.
type DashboardRequest struct {
	LayoutID  string                 `json:"layout_id,omitempty"`
	Filters   map[string]interface{} `json:"filters,omitempty"`
	DateRange DateRange              `json:"date_range,omitempty"`
}

// DashboardMeta describes the composition outcome.
type DashboardMeta struct {
	LayoutID    string    `json:"layout_id"`
	LayoutName  string    `json:"layout_name"`
	IsDefault   bool      `json:"is_default"`
	WidgetCount int       `json:"widget_count"`
	FailedCount int       `json:"failed_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

// DashboardResponse is the renderable composition result. Widgets are sized
// and refreshed, in the layout's persisted order.
type DashboardResponse struct {
	Layout  DashboardMeta `json:"layout"`
	Widgets []Widget      `json:"widgets"`
}

// LayoutInput is the create/update payload for a layout. Updates are a full
// replace; there are no merge semantics.
type LayoutInput struct {
	Name        string        `json:"name" validate:"required,min=1,max=120"`
	Description string        `json:"description" validate:"max=500"`
	IsDefault   bool          `json:"is_default"`
	UserRole    string        `json:"user_role" validate:"max=40"`
	Widgets     []WidgetInput `json:"widgets" validate:"dive"`
}

// WidgetInput is the create/update payload for a single widget.
type WidgetInput struct {
	Type        string                 `json:"type" validate:"required"`
	Title       string                 `json:"title" validate:"required,max=120"`
	Description string                 `json:"description" validate:"max=500"`
	Position    WidgetPosition         `json:"position"`
	Config      map[string]interface{} `json:"config"`
}

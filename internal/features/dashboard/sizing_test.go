package dashboard

import "testing"

func TestSizeFor(t *testing.T) {
	tests := []struct {
		name  string
		typ   WidgetType
		width int
		want  GridSize
	}{
		{"MetricIgnoresWidth", WidgetMetric, 12, GridSize{XS: 12, SM: 6, MD: 3, LG: 3}},
		{"MetricNarrow", WidgetMetric, 1, GridSize{XS: 12, SM: 6, MD: 3, LG: 3}},
		{"ChartFullRow", WidgetChart, 8, GridSize{XS: 12, SM: 12, MD: 12, LG: 12}},
		{"ChartWide", WidgetChart, 9, GridSize{XS: 12, SM: 12, MD: 12, LG: 12}},
		{"ChartHalfRow", WidgetChart, 6, GridSize{XS: 12, SM: 12, MD: 6, LG: 6}},
		{"ChartHalfRowUpper", WidgetChart, 7, GridSize{XS: 12, SM: 12, MD: 6, LG: 6}},
		{"ChartNarrow", WidgetChart, 4, GridSize{XS: 12, SM: 12, MD: 6, LG: 4}},
		{"ListWide", WidgetList, 8, GridSize{XS: 12, SM: 12, MD: 8, LG: 8}},
		{"ListNarrow", WidgetList, 5, GridSize{XS: 12, SM: 6, MD: 6, LG: 4}},
		{"TableWide", WidgetTable, 10, GridSize{XS: 12, SM: 12, MD: 8, LG: 8}},
		{"TableNarrow", WidgetTable, 4, GridSize{XS: 12, SM: 6, MD: 6, LG: 4}},
		{"CardTiny", WidgetCard, 3, GridSize{XS: 12, SM: 6, MD: 3, LG: 3}},
		{"CardSmall", WidgetCard, 4, GridSize{XS: 12, SM: 6, MD: 4, LG: 4}},
		{"ProgressHalf", WidgetProgress, 6, GridSize{XS: 12, SM: 12, MD: 6, LG: 6}},
		{"CalendarLarge", WidgetCalendar, 8, GridSize{XS: 12, SM: 12, MD: 8, LG: 8}},
		{"CardFull", WidgetCard, 9, GridSize{XS: 12, SM: 12, MD: 12, LG: 12}},
		{"UnknownTypeUsesGenericBands", WidgetType("sparkline"), 4, GridSize{XS: 12, SM: 6, MD: 4, LG: 4}},
		{"UnknownTypeFullWidth", WidgetType("sparkline"), 12, GridSize{XS: 12, SM: 12, MD: 12, LG: 12}},
		{"ZeroWidthGeneric", WidgetCard, 0, GridSize{XS: 12, SM: 6, MD: 3, LG: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SizeFor(tt.typ, tt.width)
			if got != tt.want {
				t.Errorf("SizeFor(%q, %d) = %+v, want %+v", tt.typ, tt.width, got, tt.want)
			}
		})
	}
}

func TestSizeForDeterministic(t *testing.T) {
	for _, typ := range append(KnownWidgetTypes, WidgetType("future")) {
		for width := 0; width <= 12; width++ {
			first := SizeFor(typ, width)
			for i := 0; i < 3; i++ {
				if got := SizeFor(typ, width); got != first {
					t.Fatalf("SizeFor(%q, %d) not deterministic: %+v then %+v", typ, width, first, got)
				}
			}
		}
	}
}

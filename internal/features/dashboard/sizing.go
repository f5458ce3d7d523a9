package dashboard

// SizeFor maps a widget's type and declared grid width to responsive column
// spans in a 12-column grid. Pure and deterministic: the renderer never has
// to guess, and unknown types fall through to the generic width bands.
func SizeFor(t WidgetType, declaredWidth int) GridSize {
	switch t {
	case WidgetMetric:
		// Metrics are always compact and densely packed.
		return GridSize{XS: 12, SM: 6, MD: 3, LG: 3}
	case WidgetChart:
		switch {
		case declaredWidth >= 8:
			return GridSize{XS: 12, SM: 12, MD: 12, LG: 12}
		case declaredWidth >= 6:
			return GridSize{XS: 12, SM: 12, MD: 6, LG: 6}
		default:
			return GridSize{XS: 12, SM: 12, MD: 6, LG: 4}
		}
	case WidgetList, WidgetTable:
		if declaredWidth >= 8 {
			return GridSize{XS: 12, SM: 12, MD: 8, LG: 8}
		}
		return GridSize{XS: 12, SM: 6, MD: 6, LG: 4}
	default:
		// card, progress, calendar, and anything future
		switch {
		case declaredWidth <= 3:
			return GridSize{XS: 12, SM: 6, MD: 3, LG: 3}
		case declaredWidth <= 4:
			return GridSize{XS: 12, SM: 6, MD: 4, LG: 4}
		case declaredWidth <= 6:
			return GridSize{XS: 12, SM: 12, MD: 6, LG: 6}
		case declaredWidth <= 8:
			return GridSize{XS: 12, SM: 12, MD: 8, LG: 8}
		default:
			return GridSize{XS: 12, SM: 12, MD: 12, LG: 12}
		}
	}
}

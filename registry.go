package niceview

// Registry tracks every live widget so that a state change reaches all of them.
// It holds references only; widgets are never removed.
//
// Registration belongs to the initialization phase. A widget registered while
// ForEach is running is not visited by that pass.
type Registry struct {
	widgets []*Widget
}

// Register appends w. Iteration follows registration order.
func (r *Registry) Register(w *Widget) {
	r.widgets = append(r.widgets, w)
}

// ForEach calls fn for every registered widget, in registration order.
func (r *Registry) ForEach(fn func(w *Widget)) {
	for _, w := range r.widgets {
		fn(w)
	}
}

// Len returns the number of registered widgets.
func (r *Registry) Len() int {
	return len(r.widgets)
}

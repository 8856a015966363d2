package panomark

// CollectionOption configures a Collection during creation.
// Use functional options to customize Collection behavior.
//
// Example:
//
//	// Default: the viewer's tooltip service
//	markers := panomark.NewCollection(viewer)
//
//	// Custom tooltip service (dependency injection)
//	markers := panomark.NewCollection(viewer, panomark.WithTooltipFactory(pool))
type CollectionOption func(*collectionOptions)

// collectionOptions holds optional configuration for Collection creation.
type collectionOptions struct {
	tooltips TooltipFactory
}

// defaultCollectionOptions returns the default collection options.
func defaultCollectionOptions() collectionOptions {
	return collectionOptions{
		tooltips: nil, // Will be set to the viewer if nil
	}
}

// WithTooltipFactory routes tooltip creation for every marker in the
// collection through a custom factory instead of the viewer's tooltip
// service. Use this to pool tooltips or to intercept placement.
func WithTooltipFactory(f TooltipFactory) CollectionOption {
	return func(o *collectionOptions) {
		o.tooltips = f
	}
}

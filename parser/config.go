package parser

// DefaultMaxDepth bounds grammar-rule nesting when Config.MaxDepth is zero.
const DefaultMaxDepth = 512

// Config carries the warning switches and engine limits for one parse.
// All warnings default to enabled.
type Config struct {
	// IgnoreLeadingZeroes suppresses NumberWithLeadingZeroes warnings.
	IgnoreLeadingZeroes bool
	// IgnoreTrailingZeroes suppresses NumberWithTrailingZeroes warnings.
	IgnoreTrailingZeroes bool
	// MaxDepth bounds grammar-rule nesting; 0 means DefaultMaxDepth.
	MaxDepth int
}

func (c Config) maxDepth() int {
	if c.MaxDepth > 0 {
		return c.MaxDepth
	}
	return DefaultMaxDepth
}

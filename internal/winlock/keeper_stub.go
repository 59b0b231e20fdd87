//go:build !windows

package winlock

// New returns a Passthrough keeper; there is no window lock outside Windows.
func New() Keeper {
	return Passthrough{}
}

//go:build !linux && !darwin

package memlimit

import "github.com/jonwraymond/execwrap/wrap"

// AddressSpaceCeiling is not available on this platform.
func AddressSpaceCeiling() (uint64, error) {
	return 0, wrap.ErrUnsupportedOS
}

// SetAddressSpaceCeiling is not available on this platform.
func SetAddressSpaceCeiling(bytes uint64) (uint64, error) {
	return 0, wrap.ErrUnsupportedOS
}

//go:build linux || darwin

package memlimit

import "syscall"

// AddressSpaceCeiling reports the soft RLIMIT_AS value for the process.
func AddressSpaceCeiling() (uint64, error) {
	var lim syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_AS, &lim); err != nil {
		return 0, err
	}
	return uint64(lim.Cur), nil
}

// SetAddressSpaceCeiling installs a soft RLIMIT_AS value and returns the
// previous one. The hard limit is left untouched, so a later call can raise
// the soft limit back.
func SetAddressSpaceCeiling(bytes uint64) (uint64, error) {
	var lim syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_AS, &lim); err != nil {
		return 0, err
	}

	prev := uint64(lim.Cur)
	lim.Cur = bytes
	if err := syscall.Setrlimit(syscall.RLIMIT_AS, &lim); err != nil {
		return 0, err
	}

	return prev, nil
}

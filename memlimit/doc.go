// Package memlimit confines units of work under a process memory ceiling.
//
// A Guard installs a soft runtime memory ceiling via debug.SetMemoryLimit for
// the duration of a unit of work and restores the previous ceiling when the
// work completes. While the work runs, a monitor samples memory usage on a
// fixed interval; if usage exceeds the ceiling the work's context is
// cancelled and the guard reports a LimitError.
//
// # Process-wide ceiling
//
// The Go runtime has no per-goroutine memory accounting. The ceiling set by
// debug.SetMemoryLimit applies to the entire process, so a Guard cannot
// attribute usage to the guarded work alone. Two consequences follow:
//
//   - Guarded executions are serialized by a package-level mutex. Concurrent
//     Execute calls, even on distinct guards, run one at a time so that
//     save/restore pairs never interleave.
//   - Breach detection is advisory. The monitor compares sampled usage
//     against the ceiling and cancels the work's context; the work must honor
//     cancellation for enforcement to take effect.
//
// On Linux and macOS the guard can additionally install an address space
// ceiling (RLIMIT_AS) for hard enforcement. Elsewhere that option reports
// ErrUnsupportedOS.
//
// # Usage
//
//	guard, err := memlimit.NewGuard[[]byte](memlimit.Config{
//		Bytes: 512 << 20, // 512 MiB
//	})
//	if err != nil {
//		return err
//	}
//
//	data, err := guard.Execute(ctx, loadDataset)
//	if errors.Is(err, memlimit.ErrResourceExceeded) {
//		// dataset did not fit under the ceiling
//	}
package memlimit

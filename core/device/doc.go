// Package device probes a host environment for device and browser
// capabilities and keeps the viewport orientation current.
//
// The package separates three concerns:
//
//   - Host is the boundary to the environment being probed. Every probe point
//     is independently optional; absent capabilities resolve to documented
//     defaults instead of errors. RequestHost reads best-effort values from
//     HTTP client-hint headers, ReportHost wraps a capability report posted
//     by the dashboard page, and NullHost is the no-support baseline.
//   - Detection (DetectSafeAreas, DetectFacts, ComputeOrientation) turns host
//     reads into immutable value objects. All detection functions are total.
//   - Probe is the session-scoped consumer surface: the snapshot plus the
//     single mutable orientation cell, updated by a Watch subscription that
//     debounces orientation and resize events with a fixed settle delay.
//
// Typical wiring:
//
//	probe := device.NewProbe(device.NewReportHost(report))
//	stop := probe.Watch(events, func(o device.Orientation) {
//		// re-derive and re-apply presentation values
//	})
//	defer stop()
//
// Capability absence is routine input here, not an error: a snapshot taken in
// an environment with no browser APIs at all is still fully populated with
// defaults. User-Agent based platform detection is best-effort and may
// misclassify spoofed agents; it defaults to the neutral classification.
package device

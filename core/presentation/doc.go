// Package presentation maps a device capability snapshot to the three
// derived presentation outputs: CSS custom-property values, a classification
// token set for conditional styling, and a performance-tier configuration.
//
// Every derivation function is pure and total: identical snapshots always
// produce identical output, and there are no error conditions. The derived
// Bundle has no identity of its own; consumers discard and re-derive it
// whenever the snapshot or orientation changes.
//
// The only side effect in the package is Apply, which writes a bundle onto
// an explicit StyleTarget handle. The StyleSheet target renders the result
// as servable CSS text, which is how the dashboard delivers device-adapted
// styling without any client-side derivation logic.
package presentation

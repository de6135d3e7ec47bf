// Package ui contains the example views driven by the runtime.
//
// Selector lists items and opens an Alert for the chosen one. Alert shows a
// scrollable paragraph. Both are plain runtime.View implementations: Update
// turns one event into a state change and Render paints the state through the
// widget package. Neither view touches the terminal directly.
//
// State ownership:
//   - Selector keeps its list state in internal/ui/state.Level, which tracks
//     items, the fuzzy filter, the cursor, and the viewport.
//   - Alert keeps only its text and scroll offset.
//
// Nested views:
//   - Selector opens the Alert by calling runtime.Run from inside Update. The
//     selector is suspended until the alert completes, and comes back with its
//     cursor and filter untouched. An Exit seen by the alert unwinds both.
package ui

// Package pipeline orchestrates a run: walk the tree, classify each file
// against its directory snapshot, compute the candidate name, resolve
// collisions, and hand accepted plans to the executor in either preview
// or apply mode. Processing is strictly sequential; renames mutate shared
// directory namespaces and a single pass avoids races between collision
// detection and the rename itself.
package pipeline

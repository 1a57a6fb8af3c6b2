// Package rebase drives non-interactive history rewrites through git's
// interactive rebase machinery. It locates and validates target commits,
// generates the editor scripts that stand in for git's interactive prompts,
// shelves dirty working trees, runs the rebase, and rolls back on conflict
// or failure.
package rebase

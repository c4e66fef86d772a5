// Package walker enumerates image files under a set of root
// directories.
//
// Traversal is depth-first over an explicit work list, so arbitrarily
// deep trees cannot overflow the call stack, and lazy: only the pending
// directory list and the current directory's entries are resident at
// once. Traversal order across directories is unspecified; callers must
// not depend on it.
package walker

// Package libdiff computes line diffs between texts.
package libdiff

// Package term provides presentation wrappers for console execution: named
// ANSI color styles over fatih/color and a line spinner, both usable directly
// or as middleware around a unit of work.
//
// Styles and the spinner only shape output. They never alter the wrapped
// work's result or error, and a failing unit passes its failure through
// untouched.
package term

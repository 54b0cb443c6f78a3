// Package memo provides argument-keyed result caching for units of work.
//
// It provides a Memoizer keyed by deterministic call keys, SHA-256-based
// key derivation from call arguments, and function wrappers that return
// cached results on repeat calls. Failures are never cached and the cache
// grows without bound; there is no eviction.
package memo

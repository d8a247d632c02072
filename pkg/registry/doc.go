// Package registry provides a generic, type-safe registry that is populated
// exactly once and is read-only afterwards. Reads never lock; initialization
// is serialized so concurrent callers cannot both succeed.
package registry

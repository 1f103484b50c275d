// Package docquery provides a read-only aggregation engine over third-party
// documentation sources: a documentation website, a source-code repository,
// and a package index. A query fans out to every source relevant to its kind,
// responses are normalized into canonical records, ranked, deduplicated, and
// returned together with a per-source outcome list.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or external source (e.g., goquery/,
// docsite/, pypi/).
package docquery

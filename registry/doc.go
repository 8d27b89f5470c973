// Package registry deduplicates canonical bases and product tables.
//
// A Registry maps generator-count -> *basis.Basis and signature string ->
// *product.ProductMap. It is an explicit value: create one at process start
// (or let the builder facade create one) and pass the handle to every
// consumer. There is no package-level instance.
//
// Guarantees:
//
//   - Insert-if-absent: AppendBasis/AppendProduct never replace an entry;
//     they return the canonical instance already stored for the key.
//   - Construct-once-per-key: BasisOrBuild/ProductOrBuild collapse
//     concurrent misses for one key into a single construction
//     (singleflight) and every caller observes the same pointer.
//   - Failed constructions register nothing.
//   - Removal is idempotent; entries are never mutated in place.
//
// Each map has its own RWMutex and singleflight group, so basis and product
// traffic never contend with each other.
//
// Observability: lookups, builds and build latency are exported as
// Prometheus collectors (see WithRegisterer) and builds are logged through a
// log/slog-backed Logger (see WithLogger).
package registry

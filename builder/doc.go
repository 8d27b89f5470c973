// Package builder is the facade client code uses to obtain canonical bases
// and geometric-product tables.
//
// The package offers the following key components:
//
//   - Pure validation helpers (no registry access):
//     – ValidateSignature: non-empty '+'/'-' string of at most 14 characters.
//     – ValidateSize:      generator count in [0, 14].
//     – CleanSignature:    strips everything except '+' and '-'.
//   - Builder:
//     – CreateBasis(n):                  canonical *basis.Basis per count.
//     – CreateProduct(sig):              canonical *product.ProductMap per signature.
//     – CreateProductFromBasis(b, sig):  same, offering b as the basis on a miss.
//     – Warm(cfg):                       construct a YAML-declared set up front.
//   - Configuration primitives:
//     – BuilderOption: WithRegistry, WithParallelism, WithLogger, WithRegisterer.
//     – Config / LoadConfig / OptionsFromConfig for YAML warm-up files.
//   - Sentinel aliases: ErrBadSignature, ErrGeneratorRange, ErrGradeRange,
//     ErrIndexRange, ErrNilBasis, plus ErrBadConfig.
//
// Guarantees:
//
//   - Identity sharing: the same generator count yields the same basis pointer
//     and the same signature string yields the same product pointer, for as
//     long as the entry stays in the registry. "+-" and "-+" are distinct keys.
//   - Validation precedes registry access; failures register nothing.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//
// A Builder is an explicit value holding its registry. Create one at process
// start and pass it around, or share one registry between builders with
// WithRegistry.
package builder

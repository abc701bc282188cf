// Package kernel provides core domain primitives for the courier portal.
// It implements the fundamental building blocks shared across the domain
// model.
//
// The package includes:
//   - Pincode: a validated 6-digit Indian postal code
//   - Dimensions: parcel dimensions in centimetres with permissive parsing
//   - OrderID: the locally generated order identifier (NEXYE-<epochMillis>)
//   - Number: lenient parsing of numeric JSON values that may arrive as
//     numbers or strings from the order form
//
// These primitives enforce domain invariants and validation rules so that
// domain objects are always in a valid state. They are immutable and safe
// for concurrent use.
package kernel

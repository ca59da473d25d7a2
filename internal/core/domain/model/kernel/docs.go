// Package kernel contains shared value objects used across the domain model.
//
// It provides:
//   - Barcode: the unique collection token, with structural validation and
//     random generation (PREFIX-YYYYMMDD-CODE6)
//   - OrderNumber: the human-facing order identifier (ORD-<unix>-CODE4)
//
// Value objects in this package are immutable, validate themselves on
// construction, and treat their zero values as invalid.
package kernel

// Package collection provides the domain model for click-and-collect orders.
// It implements the Collection aggregate root with lifecycle management and
// the Status state machine that guards every transition.
//
// Key business rules:
//   - Orders are placed in Pending status with a unique barcode
//   - Staff move an order to Ready when it is prepared
//   - A customer collection attempt succeeds only on a Ready order; attempts
//     on Pending, Collected, or Cancelled orders are rejected with a
//     guard-specific reason and no side effects
//   - A customer name mismatch during collection is reported but never blocks
//     the transition; barcode possession is sufficient proof of identity
//   - Collected and Cancelled are terminal; the administrative "complete"
//     action is the same terminal event as Collected
//   - collectedAt is stamped exactly once, on the transition into Collected
package collection

// Package order provides the order aggregate of the checkout system: the
// one place where item pricing, the discount policy, and the delivery policy
// meet to produce the final payable amount.
//
// The package includes:
//   - Order: the aggregate root owning snapshotted lines, the attached
//     policies, the computed price breakdown, and the payment status
//   - Line: a snapshotted (product, quantity, line total) triple
//   - Status: a state machine enforcing the order lifecycle
//
// Key business rules:
//   - Line totals are captured when the line is added; later catalog price
//     changes never alter an existing order
//   - Adding the same product twice yields two lines; carts merge, orders do not
//   - A delivery policy must be attached before the total can be calculated
//   - After calculation, total == (subtotal - discount) + delivery cost, and
//     the delivery quote's cost always equals the charged delivery cost
//   - Status follows Pending -> Paid -> Shipped -> Delivered; the placement
//     workflow only ever drives Pending -> Paid
package order

// Package order provides the Order aggregate root: the order entity, its line
// items and the derived total amount.
//
// The package includes:
//   - Order: the aggregate root tying a user, delivery/payment method and
//     address together with a free-text status and a computed total
//   - LineItem: a (product, quantity) pair; at most one line item per product
//
// Key business rules:
//   - Orders must reference a user, delivery method, payment method and address
//   - Setting a line item's quantity to zero removes it; the line item set never
//     holds zero-quantity entries
//   - TotalAmount equals the sum over all current line items of
//     quantity x product price, recomputed on every mutation that touches
//     line items and persisted together with them
//   - Status is free text with no enforced transition graph
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

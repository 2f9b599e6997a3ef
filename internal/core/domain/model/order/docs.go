// Package order provides domain entities and business logic for order
// fulfillment. It implements the Order aggregate root with lifecycle
// management, the flow-action state machine, the append-only workflow and
// event logs, and the suspension marker used by the pause/resume protocol.
//
// The package includes:
//   - Order: The aggregate root managing identity, items, status and the two logs
//   - Status / Action: A closed state machine with a static action-to-status table
//   - Suspension: The optional "waiting for external confirmation" marker
//   - Event: The domain event published on every committed transition
//
// Key business rules:
//   - Orders are identified by a composite tenant/order key that never changes
//   - Status follows PENDING -> COOKING -> PACKING -> ON_DELIVERY -> DELIVERED,
//     with CANCELLED reachable from any non-terminal status
//   - DELIVERED and CANCELLED are terminal: no further transition is accepted
//   - The workflow history is append-only; entries are never edited or removed
//   - The suspension marker is all-or-nothing: a pending step always pairs with
//     a continuation token
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

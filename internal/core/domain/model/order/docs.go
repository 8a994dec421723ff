// Package order contains the sale order aggregate and the two engines that
// operate on it: the workflow engine, which validates state transitions
// against a declared rule table, and the pricing engine, which normalizes
// line prices and aggregates them into order totals.
//
// The aggregate is created through NewOrder, which rejects structurally
// incomplete requests with a field-mapped ValidationError. Lines are
// created through Order.AddLine and are priced immediately; order totals
// stay at zero until an explicit Compute call.
package order

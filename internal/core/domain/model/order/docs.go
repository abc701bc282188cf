// Package order contains the order aggregate for the courier portal.
//
// An Order is born from a validated booking request and walks a strictly
// linear fulfillment pipeline: locations resolved, carrier authenticated,
// pickup location created, upstream order created, rates fetched, AWB
// assigned, done. A Failed absorbing state is reachable from every step;
// there are no back-edges and no compensation of earlier steps.
//
// The aggregate records the artifacts each stage produces (resolved
// cities, upstream ids, tracking code) so a terminal order - successful
// or failed - can be persisted for the order-history views.
package order

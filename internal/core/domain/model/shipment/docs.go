// Package shipment models the append-only delivery attempt log kept per order.
// Each attempt is numbered from 1 and strictly increasing; once recorded, an
// attempt is never mutated except for the single scheduled -> failed|delivered
// outcome transition. The attempt log feeds the customer-facing status
// projection: a failed attempt followed by a newer scheduled one produces the
// "next delivery scheduled" status.
package shipment

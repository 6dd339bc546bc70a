// Package complaint implements the ComplaintCase aggregate: the record that
// tracks one customer-filed complaint through investigation, physical pickup
// of the goods, and the final remedy.
//
// The aggregate enforces the resolution invariants:
//   - investigationStatus only moves investigating -> resolved_true|resolved_false
//     and never changes again
//   - pickupStatus only advances none -> scheduled -> picked_up
//   - the remedy (refund or replacement) is a one-shot, mutually exclusive
//     choice; repeats are rejected with a conflict
//   - the apology coupon is attached exactly once, at approval
//
// Wrong-state operations fail with an invalid-transition error; repeats of
// one-shot actions fail with a conflict. In both cases the aggregate is left
// untouched. Cases are never deleted; they are retained for audit.
package complaint

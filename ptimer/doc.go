// Package ptimer implements the deadline-ordered software timer list
// (spec §4.3): any number of Timer values sharing a single rtimer.
// Controller, kept in a slist.List ordered by deadline so only the
// soonest-expiring timer needs the hardware armed at any moment.
//
// List is the sole mutator of that list; every exported method enters
// its critsect.Section at most once (never nested - see critsect.Mutex's
// non-reentrancy note) so it is safe to call both from normal task
// context and from whatever drives the rtimer handler (a real ISR, or
// rtimerhosted's timer goroutine).
package ptimer

// Package courier contains the courier-quote model for rate shopping.
//
// Quotes are ephemeral: fetched fresh from the carrier's serviceability
// endpoint for every order, mapped 1:1 from the upstream response, and
// never persisted. The service-type policy decides which shipping modes
// (surface, air) a booking may use; rate selection itself lives in the
// services package.
package courier

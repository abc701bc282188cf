// Package services contains stateless domain services for the courier
// portal.
//
// RateSelector picks the cheapest eligible courier quote under the
// service-type mode policy. PriceCalculator implements the public
// weight-slab tariff shown on the order form.
package services

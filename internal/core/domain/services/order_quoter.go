package services

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pricing"
)

// Quote is the immutable result of pricing a route at a point in time.
// It is computed exactly once per order, at creation, and stored verbatim.
type Quote struct {
	DistanceKm float64
	Price      float64
}

// OrderQuoter is a domain service responsible for producing the one-time
// quote for a new delivery order.
//
// Key responsibilities:
//   - Computing the great-circle distance between pickup and drop-off
//   - Pricing that distance through the injected tariff at the request time
//
// Business rules:
//   - The distance is the haversine distance, rounded to two decimals
//   - The price is the tariff quote for that rounded distance
//   - The same route, tariff and timestamp always yield the same quote
//
// Example usage:
//
//	quoter := services.NewOrderQuoter()
//	quote, err := quoter.QuoteRoute(origin, destination, tariff, time.Now())
//	if err != nil {
//	    // invalid route or tariff
//	    return
//	}
//	// quote.DistanceKm and quote.Price go onto the new order
type OrderQuoter struct{}

// NewOrderQuoter creates a new OrderQuoter instance.
func NewOrderQuoter() OrderQuoter {
	return OrderQuoter{}
}

// QuoteRoute computes the distance between origin and destination and prices
// it through the tariff at the given time.
//
// Parameters:
//   - origin, destination: validated pickup and drop-off coordinates
//   - tariff: the pricing context; an empty tariff quotes zero
//   - at: the wall-clock time used for time-of-day surcharges
//
// Returns:
//   - Quote: the rounded distance and final price
//   - error: validation errors for unconstructed locations or tariff
func (q OrderQuoter) QuoteRoute(
	origin kernel.Location,
	destination kernel.Location,
	tariff pricing.Tariff,
	at time.Time,
) (Quote, error) {
	if err := tariff.Validate(); err != nil {
		return Quote{}, err
	}

	distance, err := origin.DistanceTo(destination)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		DistanceKm: distance,
		Price:      tariff.Quote(distance, at),
	}, nil
}

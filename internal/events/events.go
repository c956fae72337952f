// Package events defines the wire contracts shared by the publisher and the
// consumer.
package events

// RKBikeCreated is the routing key under which bike-created events are
// published on the topic exchange.
const RKBikeCreated = "bike.created"

// BikeCreated is the payload published when a bike is registered.
type BikeCreated struct {
	BikeID     string `json:"bikeId"`
	Identifier string `json:"identifier"`
	Year       int    `json:"year"`
}

// DedupKey identifies one bike-created event for at-most-once processing.
func DedupKey(bikeID string) string {
	return RKBikeCreated + ":" + bikeID
}

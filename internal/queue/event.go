// Package queue defines message payloads exchanged over the message broker.
package queue

// PropertyListedEvent is published when an owner successfully creates a
// property. It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type PropertyListedEvent struct {
	PropertyID      uint64   `json:"property_id"`
	OwnerID         uint64   `json:"owner_id"`
	CityID          uint64   `json:"city_id"`
	AddressStreet   string   `json:"address_street"`
	AddressPostcode string   `json:"address_postcode"`
	Lat             *float64 `json:"lat"`
	Long            *float64 `json:"long"`
	ListedAt        string   `json:"listed_at"`
}

// BookingCreatedEvent is published when a user books a property.
type BookingCreatedEvent struct {
	BookingID  uint64 `json:"booking_id"`
	UserID     uint64 `json:"user_id"`
	PropertyID uint64 `json:"property_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Guests     uint16 `json:"guests"`
	CreatedAt  string `json:"created_at"`
}

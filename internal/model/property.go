package model

import "time"

// Property represents a rental listing as stored in the `properties`
// table. Coordinates are pointers because the columns are nullable:
// outside the testing environment they are filled by geocoding before
// the row is inserted, but a testing-mode insert may leave them NULL.
//
// Fields:
//  ID              – primary key identifier.
//  OwnerID         – user id of the owning principal; always the
//                    authenticated requester, never client-supplied.
//  AddressStreet   – street line of the postal address.
//  AddressPostcode – postal code.
//  CityID          – city the property is located in.
//  Lat             – latitude (nullable).
//  Long            – longitude (nullable).
//  CreatedAt       – timestamp of creation.
//  UpdatedAt       – timestamp of last update.
type Property struct {
	ID              uint64   `json:"id"`               // properties.id
	OwnerID         uint64   `json:"owner_id"`         // properties.owner_id
	AddressStreet   string   `json:"address_street"`   // properties.address_street
	AddressPostcode string   `json:"address_postcode"` // properties.address_postcode
	CityID          uint64   `json:"city_id"`          // properties.city_id
	Lat             *float64 `json:"lat"`              // properties.lat (nullable)
	Long            *float64 `json:"long"`             // properties.long (nullable)
	CreatedAt       string   `json:"created_at"`       // properties.created_at
	UpdatedAt       string   `json:"updated_at"`       // properties.updated_at
}

// PropertyWithCity is the public search row: a property joined with the
// city it belongs to, as returned by GET /v1/search.
type PropertyWithCity struct {
	Property
	City City `json:"city"`
}

// Booking represents a stay booked by a user on a property, stored in
// the `bookings` table.
//
// Fields:
//  ID         – primary key identifier.
//  UserID     – booking principal (role User).
//  PropertyID – booked property.
//  StartDate  – first night of the stay.
//  EndDate    – checkout date, strictly after StartDate.
//  Guests     – number of guests.
//  Status     – booking state (CONFIRMED on creation).
//  CreatedAt  – timestamp of creation.
type Booking struct {
	ID         uint64    `json:"id"`          // bookings.id
	UserID     uint64    `json:"user_id"`     // bookings.user_id
	PropertyID uint64    `json:"property_id"` // bookings.property_id
	StartDate  string    `json:"start_date"`  // bookings.start_date (DATE)
	EndDate    string    `json:"end_date"`    // bookings.end_date (DATE)
	Guests     uint16    `json:"guests"`      // bookings.guests
	Status     string    `json:"status"`      // bookings.status
	CreatedAt  time.Time `json:"created_at"`  // bookings.created_at
}

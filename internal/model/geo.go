package model

// Country represents a row in the `countries` table. Countries are
// static reference data seeded at startup; the coordinates mark a
// representative centre point of the country.
//
// Fields:
//  ID   – primary key identifier.
//  Name – unique country name.
//  Lat  – representative latitude.
//  Long – representative longitude.
type Country struct {
	ID   uint64  `json:"id"`   // countries.id
	Name string  `json:"name"` // countries.name
	Lat  float64 `json:"lat"`  // countries.lat
	Long float64 `json:"long"` // countries.long
}

// City represents a row in the `cities` table. Every city belongs to
// exactly one country.
//
// Fields:
//  ID        – primary key identifier.
//  CountryID – country the city belongs to.
//  Name      – city name.
//  Lat       – city centre latitude.
//  Long      – city centre longitude.
type City struct {
	ID        uint64  `json:"id"`         // cities.id
	CountryID uint64  `json:"country_id"` // cities.country_id
	Name      string  `json:"name"`       // cities.name
	Lat       float64 `json:"lat"`        // cities.lat
	Long      float64 `json:"long"`       // cities.long
}

// Geoobject represents a point of interest inside a city, such as a
// landmark near which guests may want to stay. Static reference data,
// untouched by the booking workflows.
//
// Fields:
//  ID     – primary key identifier.
//  CityID – city the point of interest belongs to.
//  Name   – human-readable name.
//  Lat    – latitude of the point.
//  Long   – longitude of the point.
type Geoobject struct {
	ID     uint64  `json:"id"`      // geoobjects.id
	CityID uint64  `json:"city_id"` // geoobjects.city_id
	Name   string  `json:"name"`    // geoobjects.name
	Lat    float64 `json:"lat"`     // geoobjects.lat
	Long   float64 `json:"long"`    // geoobjects.long
}

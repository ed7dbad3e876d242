package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DiveshR/property-booking-api/internal/geocoder"
	"github.com/DiveshR/property-booking-api/internal/model"
	"github.com/DiveshR/property-booking-api/internal/repository"
)

// ErrGeocodeFailed wraps any geocoding adapter failure. A property is
// never persisted without coordinates outside the testing environment,
// so the whole creation aborts.
var ErrGeocodeFailed = errors.New("geocoding failed")

// PropertyStore is the persistence surface of the creation workflow.
// *repository.PropertyRepo satisfies it.
type PropertyStore interface {
	Create(ctx context.Context, p *model.Property) error
}

// CityStore resolves a city together with its country name.
// *repository.GeoRepo satisfies it.
type CityStore interface {
	GetCityWithCountry(ctx context.Context, id uint64) (repository.CityWithCountry, error)
}

// Geocoder resolves an address string into coordinates.
// *geocoder.Client satisfies it.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (geocoder.Point, error)
}

// CreateListingInput carries the property fields a requester may set.
// The owner is never part of the input; it is always the principal.
type CreateListingInput struct {
	AddressStreet   string
	AddressPostcode string
	CityID          uint64
	Lat             *float64
	Long            *float64
}

// PropertyService orchestrates default-owner assignment and conditional
// geocoding when a property record is created. SkipGeocode is the
// testing seam: when set, properties persist with whatever coordinates
// the input carried, possibly none.
type PropertyService struct {
	Props       PropertyStore
	Cities      CityStore
	Geo         Geocoder
	SkipGeocode bool
}

func NewPropertyService(props PropertyStore, cities CityStore, geo Geocoder, skipGeocode bool) *PropertyService {
	return &PropertyService{Props: props, Cities: cities, Geo: geo, SkipGeocode: skipGeocode}
}

// CreateListing creates a property owned by ownerID. Geocoding runs only
// when both coordinates are absent from the input: the full address is
// composed from the street, postcode, city and country, resolved through
// the adapter, and the returned coordinates are set before the insert.
// Any adapter failure aborts the creation. Each call inserts a new row;
// the workflow is deliberately not idempotent.
func (s *PropertyService) CreateListing(ctx context.Context, in CreateListingInput, ownerID uint64) (*model.Property, error) {
	p := &model.Property{
		OwnerID:         ownerID,
		AddressStreet:   in.AddressStreet,
		AddressPostcode: in.AddressPostcode,
		CityID:          in.CityID,
		Lat:             in.Lat,
		Long:            in.Long,
	}

	if p.Lat == nil && p.Long == nil && !s.SkipGeocode {
		city, err := s.Cities.GetCityWithCountry(ctx, p.CityID)
		if err != nil {
			return nil, err
		}
		fullAddress := fmt.Sprintf("%s, %s, %s, %s",
			p.AddressStreet, p.AddressPostcode, city.Name, city.CountryName)
		pt, err := s.Geo.Geocode(ctx, fullAddress)
		if err != nil {
			return nil, errors.Join(ErrGeocodeFailed, err)
		}
		p.Lat = &pt.Lat
		p.Long = &pt.Long
	}

	if err := s.Props.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

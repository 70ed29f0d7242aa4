package postgres

import (
	"context"
	"fmt"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

const storeLocationColumns = `id, name, city, address, full_address, state, zip_code, phone, hours,
	closed_days, opening_hours, latitude, longitude, google_place_id, services, accepted_payments,
	area_served, amenities, social_profiles, description, created_at, updated_at`

func (s *Store) GetAllStoreLocations(ctx context.Context) ([]models.StoreLocation, error) {
	out := []models.StoreLocation{}
	if err := s.db.SelectContext(ctx, &out, "SELECT "+storeLocationColumns+" FROM store_locations ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list store locations: %w", err)
	}
	return out, nil
}

func (s *Store) GetStoreLocation(ctx context.Context, id int64) (*models.StoreLocation, error) {
	var l models.StoreLocation
	found, err := s.get(ctx, &l, "SELECT "+storeLocationColumns+" FROM store_locations WHERE id = $1", id)
	if err != nil || !found {
		return nil, err
	}
	return &l, nil
}

func (s *Store) GetStoreLocationByCity(ctx context.Context, city string) (*models.StoreLocation, error) {
	var l models.StoreLocation
	query := "SELECT " + storeLocationColumns + " FROM store_locations WHERE LOWER(city) = LOWER($1) ORDER BY id LIMIT 1"
	found, err := s.get(ctx, &l, query, city)
	if err != nil || !found {
		return nil, err
	}
	return &l, nil
}

func (s *Store) CreateStoreLocation(ctx context.Context, in models.CreateStoreLocationInput) (*models.StoreLocation, error) {
	in = in.Defaults()
	var l models.StoreLocation
	query := `INSERT INTO store_locations
		(name, city, address, full_address, state, zip_code, phone, hours, closed_days, opening_hours,
		 latitude, longitude, google_place_id, services, accepted_payments, area_served, amenities,
		 social_profiles, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + storeLocationColumns
	_, err := s.get(ctx, &l, query,
		in.Name, in.City, in.Address, in.FullAddress, in.State, in.ZipCode, in.Phone, in.Hours,
		in.ClosedDays, in.OpeningHours, in.Latitude, in.Longitude, in.GooglePlaceID, in.Services,
		in.AcceptedPayments, in.AreaServed, in.Amenities, in.SocialProfiles, in.Description)
	if err != nil {
		return nil, fmt.Errorf("create store location: %w", err)
	}
	return &l, nil
}

func (s *Store) UpdateStoreLocation(ctx context.Context, id int64, in models.UpdateStoreLocationInput) (*models.StoreLocation, error) {
	var l models.StoreLocation
	found, err := s.update(ctx, &l, "store_locations", storeLocationColumns, id, in.Assignments(), true)
	if err != nil || !found {
		return nil, err
	}
	return &l, nil
}

func (s *Store) DeleteStoreLocation(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "store_locations", id)
}

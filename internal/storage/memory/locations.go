package memory

import (
	"context"
	"strings"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

func locationID(l models.StoreLocation) int64 { return l.ID }

func (s *Store) GetAllStoreLocations(_ context.Context) ([]models.StoreLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := values(s.storeLocations, locationID, nil)
	for i := range out {
		out[i] = out[i].Clone()
	}
	return out, nil
}

func (s *Store) GetStoreLocation(_ context.Context, id int64) (*models.StoreLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.storeLocations[id]
	if !ok {
		return nil, nil
	}
	l = l.Clone()
	return &l, nil
}

// GetStoreLocationByCity matches case-insensitively and prefers the lowest id.
func (s *Store) GetStoreLocationByCity(ctx context.Context, city string) (*models.StoreLocation, error) {
	all, err := s.GetAllStoreLocations(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range all {
		if strings.EqualFold(l.City, city) {
			return &l, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateStoreLocation(_ context.Context, in models.CreateStoreLocationInput) (*models.StoreLocation, error) {
	in = in.Defaults()
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	l := models.StoreLocation{
		ID:               s.nextID("store_locations"),
		Name:             in.Name,
		City:             in.City,
		Address:          in.Address,
		FullAddress:      in.FullAddress,
		State:            in.State,
		ZipCode:          in.ZipCode,
		Phone:            in.Phone,
		Hours:            in.Hours,
		ClosedDays:       in.ClosedDays,
		OpeningHours:     in.OpeningHours,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
		GooglePlaceID:    in.GooglePlaceID,
		Services:         in.Services,
		AcceptedPayments: in.AcceptedPayments,
		AreaServed:       in.AreaServed,
		Amenities:        in.Amenities,
		SocialProfiles:   in.SocialProfiles,
		Description:      in.Description,
		CreatedAt:        now,
		UpdatedAt:        now,
	}.Clone()
	s.storeLocations[l.ID] = l
	out := l.Clone()
	return &out, nil
}

func (s *Store) UpdateStoreLocation(_ context.Context, id int64, in models.UpdateStoreLocationInput) (*models.StoreLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.storeLocations[id]
	if !ok {
		return nil, nil
	}
	l = l.Clone()
	in.ApplyTo(&l)
	l.UpdatedAt = s.now()
	s.storeLocations[id] = l
	out := l.Clone()
	return &out, nil
}

func (s *Store) DeleteStoreLocation(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.storeLocations[id]; !ok {
		return false, nil
	}
	delete(s.storeLocations, id)
	return true, nil
}

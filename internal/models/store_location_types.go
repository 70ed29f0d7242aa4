package models

import "time"

// StoreLocation is the model for the 'store_locations' table. Columns are
// exposed snake_case on the wire, matching the location pages.
type StoreLocation struct {
	ID               int64      `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	City             string     `json:"city" db:"city"`
	Address          string     `json:"address" db:"address"`
	FullAddress      string     `json:"full_address" db:"full_address"`
	State            string     `json:"state" db:"state"`
	ZipCode          string     `json:"zip_code" db:"zip_code"`
	Phone            string     `json:"phone" db:"phone"`
	Hours            string     `json:"hours" db:"hours"`
	ClosedDays       string     `json:"closed_days" db:"closed_days"`
	OpeningHours     StringMap  `json:"opening_hours" db:"opening_hours"`
	Latitude         string     `json:"latitude" db:"latitude"`
	Longitude        string     `json:"longitude" db:"longitude"`
	GooglePlaceID    string     `json:"google_place_id" db:"google_place_id"`
	Services         StringList `json:"services" db:"services"`
	AcceptedPayments StringList `json:"accepted_payments" db:"accepted_payments"`
	AreaServed       StringList `json:"area_served" db:"area_served"`
	Amenities        StringList `json:"amenities" db:"amenities"`
	SocialProfiles   StringMap  `json:"social_profiles" db:"social_profiles"`
	Description      string     `json:"description" db:"description"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateStoreLocationInput struct {
	Name             string     `json:"name" binding:"required,max=255" yaml:"name"`
	City             string     `json:"city" binding:"required,max=100" yaml:"city"`
	Address          string     `json:"address" binding:"required" yaml:"address"`
	FullAddress      string     `json:"full_address" yaml:"full_address"`
	State            string     `json:"state" yaml:"state"`
	ZipCode          string     `json:"zip_code" yaml:"zip_code"`
	Phone            string     `json:"phone" binding:"required" yaml:"phone"`
	Hours            string     `json:"hours" yaml:"hours"`
	ClosedDays       string     `json:"closed_days" yaml:"closed_days"`
	OpeningHours     StringMap  `json:"opening_hours" yaml:"opening_hours"`
	Latitude         string     `json:"latitude" yaml:"latitude"`
	Longitude        string     `json:"longitude" yaml:"longitude"`
	GooglePlaceID    string     `json:"google_place_id" yaml:"google_place_id"`
	Services         StringList `json:"services" yaml:"services"`
	AcceptedPayments StringList `json:"accepted_payments" yaml:"accepted_payments"`
	AreaServed       StringList `json:"area_served" yaml:"area_served"`
	Amenities        StringList `json:"amenities" yaml:"amenities"`
	SocialProfiles   StringMap  `json:"social_profiles" yaml:"social_profiles"`
	Description      string     `json:"description" yaml:"description"`
}

// Defaults replaces nil JSON columns with empty values.
func (in CreateStoreLocationInput) Defaults() CreateStoreLocationInput {
	if in.OpeningHours == nil {
		in.OpeningHours = StringMap{}
	}
	if in.SocialProfiles == nil {
		in.SocialProfiles = StringMap{}
	}
	if in.Services == nil {
		in.Services = StringList{}
	}
	if in.AcceptedPayments == nil {
		in.AcceptedPayments = StringList{}
	}
	if in.AreaServed == nil {
		in.AreaServed = StringList{}
	}
	if in.Amenities == nil {
		in.Amenities = StringList{}
	}
	return in
}

// AsUpdate turns a full record into a patch touching every column, which is
// how the seeder refreshes an existing location.
func (in CreateStoreLocationInput) AsUpdate() UpdateStoreLocationInput {
	in = in.Defaults()
	return UpdateStoreLocationInput{
		Name:             &in.Name,
		City:             &in.City,
		Address:          &in.Address,
		FullAddress:      &in.FullAddress,
		State:            &in.State,
		ZipCode:          &in.ZipCode,
		Phone:            &in.Phone,
		Hours:            &in.Hours,
		ClosedDays:       &in.ClosedDays,
		OpeningHours:     in.OpeningHours,
		Latitude:         &in.Latitude,
		Longitude:        &in.Longitude,
		GooglePlaceID:    &in.GooglePlaceID,
		Services:         in.Services,
		AcceptedPayments: in.AcceptedPayments,
		AreaServed:       in.AreaServed,
		Amenities:        in.Amenities,
		SocialProfiles:   in.SocialProfiles,
		Description:      &in.Description,
	}
}

// UpdateStoreLocationInput - nil slices and maps mean "not sent".
type UpdateStoreLocationInput struct {
	Name             *string    `json:"name" binding:"omitempty,min=1,max=255"`
	City             *string    `json:"city" binding:"omitempty,min=1,max=100"`
	Address          *string    `json:"address" binding:"omitempty,min=1"`
	FullAddress      *string    `json:"full_address"`
	State            *string    `json:"state"`
	ZipCode          *string    `json:"zip_code"`
	Phone            *string    `json:"phone" binding:"omitempty,min=1"`
	Hours            *string    `json:"hours"`
	ClosedDays       *string    `json:"closed_days"`
	OpeningHours     StringMap  `json:"opening_hours"`
	Latitude         *string    `json:"latitude"`
	Longitude        *string    `json:"longitude"`
	GooglePlaceID    *string    `json:"google_place_id"`
	Services         StringList `json:"services"`
	AcceptedPayments StringList `json:"accepted_payments"`
	AreaServed       StringList `json:"area_served"`
	Amenities        StringList `json:"amenities"`
	SocialProfiles   StringMap  `json:"social_profiles"`
	Description      *string    `json:"description"`
}

// UpdateStoreLocationHoursInput is the body of the dedicated hours endpoint.
type UpdateStoreLocationHoursInput struct {
	OpeningHours StringMap `json:"opening_hours"`
	ClosedDays   *string   `json:"closed_days"`
	Hours        *string   `json:"hours"`
}

// AsUpdate narrows the hours body to a patch of exactly those three columns.
func (in UpdateStoreLocationHoursInput) AsUpdate() UpdateStoreLocationInput {
	opening := in.OpeningHours
	if opening == nil {
		opening = StringMap{}
	}
	return UpdateStoreLocationInput{
		OpeningHours: opening,
		ClosedDays:   in.ClosedDays,
		Hours:        in.Hours,
	}
}

func (in UpdateStoreLocationInput) Assignments() []Assignment {
	var out []Assignment
	addString := func(col string, v *string) {
		if v != nil {
			out = append(out, Assignment{col, *v})
		}
	}
	addString("name", in.Name)
	addString("city", in.City)
	addString("address", in.Address)
	addString("full_address", in.FullAddress)
	addString("state", in.State)
	addString("zip_code", in.ZipCode)
	addString("phone", in.Phone)
	addString("hours", in.Hours)
	addString("closed_days", in.ClosedDays)
	if in.OpeningHours != nil {
		out = append(out, Assignment{"opening_hours", in.OpeningHours})
	}
	addString("latitude", in.Latitude)
	addString("longitude", in.Longitude)
	addString("google_place_id", in.GooglePlaceID)
	if in.Services != nil {
		out = append(out, Assignment{"services", in.Services})
	}
	if in.AcceptedPayments != nil {
		out = append(out, Assignment{"accepted_payments", in.AcceptedPayments})
	}
	if in.AreaServed != nil {
		out = append(out, Assignment{"area_served", in.AreaServed})
	}
	if in.Amenities != nil {
		out = append(out, Assignment{"amenities", in.Amenities})
	}
	if in.SocialProfiles != nil {
		out = append(out, Assignment{"social_profiles", in.SocialProfiles})
	}
	addString("description", in.Description)
	return out
}

func (in UpdateStoreLocationInput) ApplyTo(l *StoreLocation) {
	setString := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	setString(&l.Name, in.Name)
	setString(&l.City, in.City)
	setString(&l.Address, in.Address)
	setString(&l.FullAddress, in.FullAddress)
	setString(&l.State, in.State)
	setString(&l.ZipCode, in.ZipCode)
	setString(&l.Phone, in.Phone)
	setString(&l.Hours, in.Hours)
	setString(&l.ClosedDays, in.ClosedDays)
	if in.OpeningHours != nil {
		l.OpeningHours = in.OpeningHours.Clone()
	}
	setString(&l.Latitude, in.Latitude)
	setString(&l.Longitude, in.Longitude)
	setString(&l.GooglePlaceID, in.GooglePlaceID)
	if in.Services != nil {
		l.Services = in.Services.Clone()
	}
	if in.AcceptedPayments != nil {
		l.AcceptedPayments = in.AcceptedPayments.Clone()
	}
	if in.AreaServed != nil {
		l.AreaServed = in.AreaServed.Clone()
	}
	if in.Amenities != nil {
		l.Amenities = in.Amenities.Clone()
	}
	if in.SocialProfiles != nil {
		l.SocialProfiles = in.SocialProfiles.Clone()
	}
	setString(&l.Description, in.Description)
}

// Clone returns a deep copy so callers cannot alias stored JSON columns.
func (l StoreLocation) Clone() StoreLocation {
	l.OpeningHours = l.OpeningHours.Clone()
	l.Services = l.Services.Clone()
	l.AcceptedPayments = l.AcceptedPayments.Clone()
	l.AreaServed = l.AreaServed.Clone()
	l.Amenities = l.Amenities.Clone()
	l.SocialProfiles = l.SocialProfiles.Clone()
	return l
}

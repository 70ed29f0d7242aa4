package models

import "time"

// NewsletterSubscription is the model for the 'newsletter_subscriptions' table.
type NewsletterSubscription struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Source       *string   `json:"source" db:"source"`
	IPAddress    *string   `json:"ipAddress" db:"ip_address"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	SubscribedAt time.Time `json:"subscribedAt" db:"subscribed_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// SubscribeInput is the public sign-up body.
type SubscribeInput struct {
	Email  string  `json:"email" binding:"required,email,max=255"`
	Source *string `json:"source" binding:"omitempty,max=100"`
}

// CreateNewsletterSubscriptionInput is the insert shape; the IP is taken from
// the request, never from the body.
type CreateNewsletterSubscriptionInput struct {
	Email     string
	Source    *string
	IPAddress *string
}

type UpdateNewsletterSubscriptionInput struct {
	IsActive *bool
	Source   *string
}

func (in UpdateNewsletterSubscriptionInput) Assignments() []Assignment {
	var out []Assignment
	if in.IsActive != nil {
		out = append(out, Assignment{"is_active", *in.IsActive})
	}
	if in.Source != nil {
		out = append(out, Assignment{"source", *in.Source})
	}
	return out
}

func (in UpdateNewsletterSubscriptionInput) ApplyTo(s *NewsletterSubscription) {
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	if in.Source != nil {
		s.Source = copyString(in.Source)
	}
}

package memory

import (
	"context"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

func subscriptionID(n models.NewsletterSubscription) int64 { return n.ID }

// newest first
func bySubscribedDesc(a, b models.NewsletterSubscription) int {
	return b.SubscribedAt.Compare(a.SubscribedAt)
}

func cloneSubscription(n models.NewsletterSubscription) models.NewsletterSubscription {
	n.Source = copyString(n.Source)
	n.IPAddress = copyString(n.IPAddress)
	return n
}

func (s *Store) GetAllNewsletterSubscriptions(_ context.Context) ([]models.NewsletterSubscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := values(s.subscriptions, subscriptionID, bySubscribedDesc)
	for i := range out {
		out[i] = cloneSubscription(out[i])
	}
	return out, nil
}

func (s *Store) GetNewsletterSubscriptionByEmail(_ context.Context, email string) (*models.NewsletterSubscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := s.subscriptionByEmail(email)
	if n == nil {
		return nil, nil
	}
	out := cloneSubscription(*n)
	return &out, nil
}

func (s *Store) subscriptionByEmail(email string) *models.NewsletterSubscription {
	for _, n := range s.subscriptions {
		if n.Email == email {
			return &n
		}
	}
	return nil
}

func (s *Store) CreateNewsletterSubscription(_ context.Context, in models.CreateNewsletterSubscriptionInput) (*models.NewsletterSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subscriptionByEmail(in.Email) != nil {
		return nil, duplicate("newsletter_subscriptions.email", in.Email)
	}
	now := s.now()
	n := cloneSubscription(models.NewsletterSubscription{
		ID:           s.nextID("newsletter_subscriptions"),
		Email:        in.Email,
		Source:       in.Source,
		IPAddress:    in.IPAddress,
		IsActive:     true,
		SubscribedAt: now,
		UpdatedAt:    now,
	})
	s.subscriptions[n.ID] = n
	out := cloneSubscription(n)
	return &out, nil
}

func (s *Store) UpdateNewsletterSubscription(_ context.Context, id int64, in models.UpdateNewsletterSubscriptionInput) (*models.NewsletterSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.subscriptions[id]
	if !ok {
		return nil, nil
	}
	in.ApplyTo(&n)
	n.UpdatedAt = s.now()
	s.subscriptions[id] = n
	out := cloneSubscription(n)
	return &out, nil
}

func (s *Store) DeleteNewsletterSubscription(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscriptions[id]; !ok {
		return false, nil
	}
	delete(s.subscriptions, id)
	return true, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

const subscriptionColumns = "id, email, source, ip_address, is_active, subscribed_at, updated_at"

func (s *Store) GetAllNewsletterSubscriptions(ctx context.Context) ([]models.NewsletterSubscription, error) {
	out := []models.NewsletterSubscription{}
	query := "SELECT " + subscriptionColumns + " FROM newsletter_subscriptions ORDER BY subscribed_at DESC, id"
	if err := s.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list newsletter subscriptions: %w", err)
	}
	return out, nil
}

func (s *Store) GetNewsletterSubscriptionByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	var n models.NewsletterSubscription
	query := "SELECT " + subscriptionColumns + " FROM newsletter_subscriptions WHERE email = $1"
	found, err := s.get(ctx, &n, query, email)
	if err != nil || !found {
		return nil, err
	}
	return &n, nil
}

func (s *Store) CreateNewsletterSubscription(ctx context.Context, in models.CreateNewsletterSubscriptionInput) (*models.NewsletterSubscription, error) {
	var n models.NewsletterSubscription
	query := `INSERT INTO newsletter_subscriptions (email, source, ip_address)
		VALUES ($1, $2, $3) RETURNING ` + subscriptionColumns
	if _, err := s.get(ctx, &n, query, in.Email, in.Source, in.IPAddress); err != nil {
		return nil, fmt.Errorf("create newsletter subscription: %w", err)
	}
	return &n, nil
}

func (s *Store) UpdateNewsletterSubscription(ctx context.Context, id int64, in models.UpdateNewsletterSubscriptionInput) (*models.NewsletterSubscription, error) {
	var n models.NewsletterSubscription
	found, err := s.update(ctx, &n, "newsletter_subscriptions", subscriptionColumns, id, in.Assignments(), true)
	if err != nil || !found {
		return nil, err
	}
	return &n, nil
}

func (s *Store) DeleteNewsletterSubscription(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "newsletter_subscriptions", id)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

const blogPostColumns = `id, title, slug, summary, content, featured_image, published, featured,
	meta_title, meta_description, view_count, created_at, updated_at`

func (s *Store) GetAllBlogPosts(ctx context.Context, includeDrafts bool) ([]models.BlogPost, error) {
	out := []models.BlogPost{}
	query := "SELECT " + blogPostColumns + " FROM blog_posts"
	if !includeDrafts {
		query += " WHERE published = TRUE"
	}
	query += " ORDER BY created_at DESC, id DESC"
	if err := s.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return out, nil
}

func (s *Store) GetFeaturedBlogPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	out := []models.BlogPost{}
	query := "SELECT " + blogPostColumns + ` FROM blog_posts
		WHERE published = TRUE AND featured = TRUE
		ORDER BY created_at DESC, id DESC LIMIT $1`
	if err := s.db.SelectContext(ctx, &out, query, limit); err != nil {
		return nil, fmt.Errorf("list featured blog posts: %w", err)
	}
	return out, nil
}

func (s *Store) GetBlogPost(ctx context.Context, id int64) (*models.BlogPost, error) {
	var p models.BlogPost
	found, err := s.get(ctx, &p, "SELECT "+blogPostColumns+" FROM blog_posts WHERE id = $1", id)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *Store) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var p models.BlogPost
	found, err := s.get(ctx, &p, "SELECT "+blogPostColumns+" FROM blog_posts WHERE slug = $1", slug)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateBlogPost(ctx context.Context, in models.CreateBlogPostInput) (*models.BlogPost, error) {
	var p models.BlogPost
	query := `INSERT INTO blog_posts
		(title, slug, summary, content, featured_image, published, featured, meta_title, meta_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING ` + blogPostColumns
	_, err := s.get(ctx, &p, query,
		in.Title, in.Slug, in.Summary, in.Content, in.FeaturedImage,
		in.Published, in.Featured, in.MetaTitle, in.MetaDescription)
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return &p, nil
}

func (s *Store) UpdateBlogPost(ctx context.Context, id int64, in models.UpdateBlogPostInput) (*models.BlogPost, error) {
	var p models.BlogPost
	found, err := s.update(ctx, &p, "blog_posts", blogPostColumns, id, in.Assignments(), true)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *Store) DeleteBlogPost(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "blog_posts", id)
}

// IncrementBlogPostViewCount relies on the row-level update being atomic, so
// concurrent calls never lose a view.
func (s *Store) IncrementBlogPostViewCount(ctx context.Context, id int64) error {
	if _, err := s.exec(ctx, "UPDATE blog_posts SET view_count = view_count + 1 WHERE id = $1", id); err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}
	return nil
}

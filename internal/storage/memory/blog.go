package memory

import (
	"context"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

func blogPostID(p models.BlogPost) int64 { return p.ID }

// newest first
func byCreatedDesc(a, b models.BlogPost) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	switch {
	case a.ID > b.ID:
		return -1
	case a.ID < b.ID:
		return 1
	}
	return 0
}

func clonePost(p models.BlogPost) models.BlogPost {
	p.FeaturedImage = copyString(p.FeaturedImage)
	p.MetaTitle = copyString(p.MetaTitle)
	p.MetaDescription = copyString(p.MetaDescription)
	return p
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func (s *Store) GetAllBlogPosts(_ context.Context, includeDrafts bool) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.BlogPost{}
	for _, p := range s.blogPosts {
		if includeDrafts || p.Published {
			out = append(out, clonePost(p))
		}
	}
	sortRows(out, blogPostID, byCreatedDesc)
	return out, nil
}

func (s *Store) GetFeaturedBlogPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	posts, err := s.GetAllBlogPosts(ctx, false)
	if err != nil {
		return nil, err
	}
	out := []models.BlogPost{}
	for _, p := range posts {
		if len(out) == limit {
			break
		}
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) GetBlogPost(_ context.Context, id int64) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.blogPosts[id]
	if !ok {
		return nil, nil
	}
	p = clonePost(p)
	return &p, nil
}

func (s *Store) GetBlogPostBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.postBySlug(slug)
	if p == nil {
		return nil, nil
	}
	c := clonePost(*p)
	return &c, nil
}

func (s *Store) postBySlug(slug string) *models.BlogPost {
	for _, p := range s.blogPosts {
		if p.Slug == slug {
			return &p
		}
	}
	return nil
}

func (s *Store) CreateBlogPost(_ context.Context, in models.CreateBlogPostInput) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.postBySlug(in.Slug) != nil {
		return nil, duplicate("blog_posts.slug", in.Slug)
	}
	now := s.now()
	p := clonePost(models.BlogPost{
		ID:              s.nextID("blog_posts"),
		Title:           in.Title,
		Slug:            in.Slug,
		Summary:         in.Summary,
		Content:         in.Content,
		FeaturedImage:   in.FeaturedImage,
		Published:       in.Published,
		Featured:        in.Featured,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	s.blogPosts[p.ID] = p
	out := clonePost(p)
	return &out, nil
}

func (s *Store) UpdateBlogPost(_ context.Context, id int64, in models.UpdateBlogPostInput) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.blogPosts[id]
	if !ok {
		return nil, nil
	}
	if in.Slug != nil && *in.Slug != p.Slug {
		if other := s.postBySlug(*in.Slug); other != nil {
			return nil, duplicate("blog_posts.slug", *in.Slug)
		}
	}
	in.ApplyTo(&p)
	p.UpdatedAt = s.now()
	s.blogPosts[id] = p
	out := clonePost(p)
	return &out, nil
}

func (s *Store) DeleteBlogPost(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blogPosts[id]; !ok {
		return false, nil
	}
	delete(s.blogPosts, id)
	return true, nil
}

// IncrementBlogPostViewCount does not touch updated_at. A missing post is a
// no-op.
func (s *Store) IncrementBlogPostViewCount(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.blogPosts[id]
	if !ok {
		return nil
	}
	p.ViewCount++
	s.blogPosts[id] = p
	return nil
}

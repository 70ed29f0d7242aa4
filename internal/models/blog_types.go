package models

import "time"

// BlogPost is the model for the 'blog_posts' table.
type BlogPost struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Slug            string    `json:"slug" db:"slug"`
	Summary         string    `json:"summary" db:"summary"`
	Content         string    `json:"content" db:"content"`
	FeaturedImage   *string   `json:"featuredImage" db:"featured_image"`
	Published       bool      `json:"published" db:"published"`
	Featured        bool      `json:"featured" db:"featured"`
	MetaTitle       *string   `json:"metaTitle" db:"meta_title"`
	MetaDescription *string   `json:"metaDescription" db:"meta_description"`
	ViewCount       int64     `json:"viewCount" db:"view_count"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateBlogPostInput - slug is optional and derived from the title when empty.
type CreateBlogPostInput struct {
	Title           string  `json:"title" binding:"required,max=255"`
	Slug            string  `json:"slug" binding:"omitempty,max=255"`
	Summary         string  `json:"summary" binding:"required"`
	Content         string  `json:"content" binding:"required"`
	FeaturedImage   *string `json:"featuredImage"`
	Published       bool    `json:"published"`
	Featured        bool    `json:"featured"`
	MetaTitle       *string `json:"metaTitle" binding:"omitempty,max=255"`
	MetaDescription *string `json:"metaDescription"`
}

// UpdateBlogPostInput patches a post. The nullable columns are cleared by
// sending null; leaving them out keeps the stored value.
type UpdateBlogPostInput struct {
	Title           *string          `json:"title" binding:"omitempty,min=1,max=255"`
	Slug            *string          `json:"slug" binding:"omitempty,min=1,max=255"`
	Summary         *string          `json:"summary" binding:"omitempty,min=1"`
	Content         *string          `json:"content" binding:"omitempty,min=1"`
	FeaturedImage   Nullable[string] `json:"featuredImage"`
	Published       *bool            `json:"published"`
	Featured        *bool            `json:"featured"`
	MetaTitle       Nullable[string] `json:"metaTitle" binding:"omitempty,max=255"`
	MetaDescription Nullable[string] `json:"metaDescription"`
}

func (in UpdateBlogPostInput) Assignments() []Assignment {
	var out []Assignment
	if in.Title != nil {
		out = append(out, Assignment{"title", *in.Title})
	}
	if in.Slug != nil {
		out = append(out, Assignment{"slug", *in.Slug})
	}
	if in.Summary != nil {
		out = append(out, Assignment{"summary", *in.Summary})
	}
	if in.Content != nil {
		out = append(out, Assignment{"content", *in.Content})
	}
	if in.FeaturedImage.Set {
		out = append(out, Assignment{"featured_image", in.FeaturedImage.SQLValue()})
	}
	if in.Published != nil {
		out = append(out, Assignment{"published", *in.Published})
	}
	if in.Featured != nil {
		out = append(out, Assignment{"featured", *in.Featured})
	}
	if in.MetaTitle.Set {
		out = append(out, Assignment{"meta_title", in.MetaTitle.SQLValue()})
	}
	if in.MetaDescription.Set {
		out = append(out, Assignment{"meta_description", in.MetaDescription.SQLValue()})
	}
	return out
}

func (in UpdateBlogPostInput) ApplyTo(p *BlogPost) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Slug != nil {
		p.Slug = *in.Slug
	}
	if in.Summary != nil {
		p.Summary = *in.Summary
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.FeaturedImage.Set {
		p.FeaturedImage = in.FeaturedImage.Ptr()
	}
	if in.Published != nil {
		p.Published = *in.Published
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.MetaTitle.Set {
		p.MetaTitle = in.MetaTitle.Ptr()
	}
	if in.MetaDescription.Set {
		p.MetaDescription = in.MetaDescription.Ptr()
	}
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

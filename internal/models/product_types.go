package models

import "time"

// ProductCategory is the model for the 'product_categories' table.
type ProductCategory struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	Description  *string   `json:"description" db:"description"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Product is the model for the 'products' table.
// Price is free text; nil means "call for price".
type Product struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	Price         *string   `json:"price" db:"price"`
	Image         string    `json:"image" db:"image"`
	Category      string    `json:"category" db:"category"`
	CategoryID    *int64    `json:"categoryId" db:"category_id"`
	Featured      bool      `json:"featured" db:"featured"`
	FeaturedLabel *string   `json:"featuredLabel" db:"featured_label"`
	Stock         int       `json:"stock" db:"stock"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// --- Inputs ---

type CreateProductCategoryInput struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Slug         string  `json:"slug" binding:"omitempty,max=100"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"displayOrder" binding:"gte=0"`
}

type UpdateProductCategoryInput struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Slug         *string          `json:"slug" binding:"omitempty,min=1,max=100"`
	Description  Nullable[string] `json:"description"`
	DisplayOrder *int             `json:"displayOrder" binding:"omitempty,gte=0"`
}

func (in UpdateProductCategoryInput) Assignments() []Assignment {
	var out []Assignment
	if in.Name != nil {
		out = append(out, Assignment{"name", *in.Name})
	}
	if in.Slug != nil {
		out = append(out, Assignment{"slug", *in.Slug})
	}
	if in.Description.Set {
		out = append(out, Assignment{"description", in.Description.SQLValue()})
	}
	if in.DisplayOrder != nil {
		out = append(out, Assignment{"display_order", *in.DisplayOrder})
	}
	return out
}

func (in UpdateProductCategoryInput) ApplyTo(c *ProductCategory) {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Slug != nil {
		c.Slug = *in.Slug
	}
	if in.Description.Set {
		c.Description = in.Description.Ptr()
	}
	if in.DisplayOrder != nil {
		c.DisplayOrder = *in.DisplayOrder
	}
}

type CreateProductInput struct {
	Name          string  `json:"name" binding:"required,max=255" yaml:"name"`
	Description   string  `json:"description" binding:"required" yaml:"description"`
	Price         *string `json:"price" binding:"omitempty,max=50" yaml:"price"`
	Image         string  `json:"image" binding:"required" yaml:"image"`
	Category      string  `json:"category" binding:"required,max=100" yaml:"category"`
	CategoryID    *int64  `json:"categoryId" binding:"omitempty,gt=0" yaml:"category_id"`
	Featured      bool    `json:"featured" yaml:"featured"`
	FeaturedLabel *string `json:"featuredLabel" binding:"omitempty,max=50" yaml:"featured_label"`
	Stock         int     `json:"stock" binding:"gte=0" yaml:"stock"`
}

// AsUpdate turns a full record into a patch touching every column.
func (in CreateProductInput) AsUpdate() UpdateProductInput {
	return UpdateProductInput{
		Name:          &in.Name,
		Description:   &in.Description,
		Price:         NullableFrom(in.Price),
		Image:         &in.Image,
		Category:      &in.Category,
		CategoryID:    NullableFrom(in.CategoryID),
		Featured:      &in.Featured,
		FeaturedLabel: NullableFrom(in.FeaturedLabel),
		Stock:         &in.Stock,
	}
}

// UpdateProductInput patches a product. Sending null for price clears it
// back to "call for price"; null categoryId detaches the category.
type UpdateProductInput struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description   *string          `json:"description" binding:"omitempty,min=1"`
	Price         Nullable[string] `json:"price" binding:"omitempty,max=50"`
	Image         *string          `json:"image" binding:"omitempty,min=1"`
	Category      *string          `json:"category" binding:"omitempty,min=1,max=100"`
	CategoryID    Nullable[int64]  `json:"categoryId" binding:"omitempty,gt=0"`
	Featured      *bool            `json:"featured"`
	FeaturedLabel Nullable[string] `json:"featuredLabel" binding:"omitempty,max=50"`
	Stock         *int             `json:"stock" binding:"omitempty,gte=0"`
}

func (in UpdateProductInput) Assignments() []Assignment {
	var out []Assignment
	if in.Name != nil {
		out = append(out, Assignment{"name", *in.Name})
	}
	if in.Description != nil {
		out = append(out, Assignment{"description", *in.Description})
	}
	if in.Price.Set {
		out = append(out, Assignment{"price", in.Price.SQLValue()})
	}
	if in.Image != nil {
		out = append(out, Assignment{"image", *in.Image})
	}
	if in.Category != nil {
		out = append(out, Assignment{"category", *in.Category})
	}
	if in.CategoryID.Set {
		out = append(out, Assignment{"category_id", in.CategoryID.SQLValue()})
	}
	if in.Featured != nil {
		out = append(out, Assignment{"featured", *in.Featured})
	}
	if in.FeaturedLabel.Set {
		out = append(out, Assignment{"featured_label", in.FeaturedLabel.SQLValue()})
	}
	if in.Stock != nil {
		out = append(out, Assignment{"stock", *in.Stock})
	}
	return out
}

func (in UpdateProductInput) ApplyTo(p *Product) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price.Set {
		p.Price = in.Price.Ptr()
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.CategoryID.Set {
		p.CategoryID = in.CategoryID.Ptr()
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.FeaturedLabel.Set {
		p.FeaturedLabel = in.FeaturedLabel.Ptr()
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
}

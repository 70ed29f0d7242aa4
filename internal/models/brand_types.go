package models

// DefaultCarouselIntervalMs is used when a brand category is created without
// an interval.
const DefaultCarouselIntervalMs = 5000

// BrandCategory defines the struct for the 'brand_categories' table. Each
// category drives one carousel on the brands page.
type BrandCategory struct {
	ID           int64  `json:"id" db:"id"`
	Category     string `json:"category" db:"category"`
	BgClass      string `json:"bgClass" db:"bg_class"`
	DisplayOrder int    `json:"displayOrder" db:"display_order"`
	IntervalMs   int    `json:"intervalMs" db:"interval_ms"`
}

// Brand defines the struct for the 'brands' table.
type Brand struct {
	ID           int64  `json:"id" db:"id"`
	CategoryID   int64  `json:"categoryId" db:"category_id"`
	Name         string `json:"name" db:"name"`
	Image        string `json:"image" db:"image"`
	Description  string `json:"description" db:"description"`
	DisplayOrder int    `json:"displayOrder" db:"display_order"`
}

// --- API Input Structs ---

type CreateBrandCategoryInput struct {
	Category     string `json:"category" binding:"required,max=100"`
	BgClass      string `json:"bgClass" binding:"max=200"`
	DisplayOrder int    `json:"displayOrder" binding:"gte=0"`
	IntervalMs   int    `json:"intervalMs" binding:"gte=0"`
}

// Defaults fills the columns that have database defaults.
func (in CreateBrandCategoryInput) Defaults() CreateBrandCategoryInput {
	if in.IntervalMs == 0 {
		in.IntervalMs = DefaultCarouselIntervalMs
	}
	return in
}

type UpdateBrandCategoryInput struct {
	Category     *string `json:"category" binding:"omitempty,min=1,max=100"`
	BgClass      *string `json:"bgClass" binding:"omitempty,max=200"`
	DisplayOrder *int    `json:"displayOrder" binding:"omitempty,gte=0"`
	IntervalMs   *int    `json:"intervalMs" binding:"omitempty,gt=0"`
}

func (in UpdateBrandCategoryInput) Assignments() []Assignment {
	var out []Assignment
	if in.Category != nil {
		out = append(out, Assignment{"category", *in.Category})
	}
	if in.BgClass != nil {
		out = append(out, Assignment{"bg_class", *in.BgClass})
	}
	if in.DisplayOrder != nil {
		out = append(out, Assignment{"display_order", *in.DisplayOrder})
	}
	if in.IntervalMs != nil {
		out = append(out, Assignment{"interval_ms", *in.IntervalMs})
	}
	return out
}

func (in UpdateBrandCategoryInput) ApplyTo(c *BrandCategory) {
	if in.Category != nil {
		c.Category = *in.Category
	}
	if in.BgClass != nil {
		c.BgClass = *in.BgClass
	}
	if in.DisplayOrder != nil {
		c.DisplayOrder = *in.DisplayOrder
	}
	if in.IntervalMs != nil {
		c.IntervalMs = *in.IntervalMs
	}
}

// CreateBrandInput is the insert shape for a brand. ImageSize is accepted so
// older admin clients keep working, and then dropped.
type CreateBrandInput struct {
	CategoryID   int64  `json:"categoryId" binding:"required,gt=0"`
	Name         string `json:"name" binding:"required,max=100"`
	Image        string `json:"image" binding:"max=500"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder" binding:"gte=0"`
	ImageSize    string `json:"imageSize,omitempty"`
}

type UpdateBrandInput struct {
	CategoryID   *int64  `json:"categoryId" binding:"omitempty,gt=0"`
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	Image        *string `json:"image" binding:"omitempty,max=500"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"displayOrder" binding:"omitempty,gte=0"`
	ImageSize    *string `json:"imageSize,omitempty"`
}

func (in UpdateBrandInput) Assignments() []Assignment {
	var out []Assignment
	if in.CategoryID != nil {
		out = append(out, Assignment{"category_id", *in.CategoryID})
	}
	if in.Name != nil {
		out = append(out, Assignment{"name", *in.Name})
	}
	if in.Image != nil {
		out = append(out, Assignment{"image", *in.Image})
	}
	if in.Description != nil {
		out = append(out, Assignment{"description", *in.Description})
	}
	if in.DisplayOrder != nil {
		out = append(out, Assignment{"display_order", *in.DisplayOrder})
	}
	return out
}

func (in UpdateBrandInput) ApplyTo(b *Brand) {
	if in.CategoryID != nil {
		b.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Image != nil {
		b.Image = *in.Image
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.DisplayOrder != nil {
		b.DisplayOrder = *in.DisplayOrder
	}
}

package model

// TaxonomyKind selects one of the three taxonomy tables.
type TaxonomyKind string

const (
	KindCategory    TaxonomyKind = "categories"
	KindSubcategory TaxonomyKind = "subcategories"
	KindCollection  TaxonomyKind = "collections"
)

// Valid reports whether k names a known taxonomy table.
func (k TaxonomyKind) Valid() bool {
	switch k {
	case KindCategory, KindSubcategory, KindCollection:
		return true
	}
	return false
}

// Taxonomy holds the columns shared by categories, subcategories and collections.
// Name is the unique slug derived from Fullname.
type Taxonomy struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"uniqueIndex;size:64;not null"`
	Fullname string `json:"fullname" gorm:"uniqueIndex;size:64;not null"`
}

// Category is a top level gallery section.
type Category struct {
	Taxonomy
}

// Subcategory refines a category in the gallery sidebar.
type Subcategory struct {
	Taxonomy
}

// Collection groups photos across categories.
type Collection struct {
	Taxonomy
}

func (Category) TableName() string    { return string(KindCategory) }
func (Subcategory) TableName() string { return string(KindSubcategory) }
func (Collection) TableName() string  { return string(KindCollection) }

package model

// Photo is a cataloged image file. Taxonomy references are optional.
type Photo struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	Filename      string       `json:"filename" gorm:"uniqueIndex;size:64;not null"`
	Filepath      string       `json:"filepath" gorm:"size:256"`
	Slideshow     bool         `json:"slideshow" gorm:"not null;default:false;index"`
	Active        bool         `json:"active" gorm:"not null;index"`
	Featured      bool         `json:"featured" gorm:"not null;default:false"`
	CategoryID    *uint        `json:"category_id" gorm:"index"`
	SubcategoryID *uint        `json:"subcategory_id" gorm:"index"`
	CollectionID  *uint        `json:"collection_id" gorm:"index"`
	Category      *Category    `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Subcategory   *Subcategory `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryID"`
	Collection    *Collection  `json:"collection,omitempty" gorm:"foreignKey:CollectionID"`
}

// PhotoFlags are the admin-controlled visibility switches of a photo.
type PhotoFlags struct {
	Slideshow bool `json:"slideshow"`
	Active    bool `json:"active"`
	Featured  bool `json:"featured"`
}

// DefaultPhotoFlags mirrors the column defaults.
func DefaultPhotoFlags() PhotoFlags {
	return PhotoFlags{Active: true}
}

// TaxonomyRefs are the optional taxonomy ids attached to a photo.
type TaxonomyRefs struct {
	CategoryID    *uint `json:"category_id"`
	SubcategoryID *uint `json:"subcategory_id"`
	CollectionID  *uint `json:"collection_id"`
}

// Apply copies flags and references onto the photo.
func (p *Photo) Apply(flags PhotoFlags, refs TaxonomyRefs) {
	p.Slideshow = flags.Slideshow
	p.Active = flags.Active
	p.Featured = flags.Featured
	p.CategoryID = refs.CategoryID
	p.SubcategoryID = refs.SubcategoryID
	p.CollectionID = refs.CollectionID
}

// internal/models/catalog.go
package models

// Read-only collaborators of the aggregate store. The validation gate only
// ever asks them "does this id resolve to a live row"; the rest is plain CRUD.

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;index"`
	Description string `json:"description" gorm:"type:text"`
}

type Collection struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;index"`
	Description string `json:"description" gorm:"type:text"`
	Season      string `json:"season" gorm:"size:50"`
}

type SignaturePiece struct {
	BaseModel
	Name     string `json:"name" gorm:"size:100;not null;index"`
	Designer string `json:"designer" gorm:"size:100"`
	Story    string `json:"story" gorm:"type:text"`
}

package models

import (
	"time"

	"github.com/lib/pq"
)

type Transaction struct {
	ID       string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UID      string         `gorm:"index;type:varchar(36);not null" json:"uid"`
	Folio    string         `gorm:"type:varchar(36)" json:"folio"`
	Concept  string         `gorm:"not null" json:"concept"`
	Date     time.Time      `gorm:"not null" json:"date"`
	Category pq.StringArray `gorm:"type:text[]" json:"category"`
	Amount   int64          `gorm:"not null" json:"amount"`
	Tax      int64          `json:"tax"`
	Subtotal int64          `json:"subtotal"`
	FiscalID string         `json:"uuid"`
	Rfc      string         `json:"rfc"`
	Company  string         `json:"company"`
}

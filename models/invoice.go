package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceRecord is the best-effort audit row written after a successful
// generation. It is a summary, not the document itself; the PDF on disk is
// the source of truth.
type InvoiceRecord struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	CompanyName    string `gorm:"not null"`
	CompanyAddress string `gorm:"type:text"`
	Email          string
	Amount         float64 `gorm:"type:decimal(10,2);default:0.0"`
	FinalAmount    float64 `gorm:"type:decimal(10,2);default:0.0"`
	ProductSummary string  `gorm:"type:text"`
	AmountPaid     float64 `gorm:"type:decimal(10,2);default:0.0"`
	Change         float64 `gorm:"type:decimal(10,2);default:0.0"`

	CreatedAt time.Time
}

func (InvoiceRecord) TableName() string {
	return "invoices"
}

func (r *InvoiceRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

package personnel

import (
	"strings"
	"time"
)

type Personnel struct {
	ID              int64
	WorkerCode      *string
	FirstName       string
	PaternalSurname *string
	MaternalSurname *string
	DocumentNumber  *string
	Email           *string
	HireDate        *string
	BirthDate       *string
	PhotoURL        *string
	Position        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName joins the given name and both surnames, dropping absent parts.
func (p Personnel) FullName() string {
	parts := []string{p.FirstName}
	if p.PaternalSurname != nil {
		parts = append(parts, *p.PaternalSurname)
	}
	if p.MaternalSurname != nil {
		parts = append(parts, *p.MaternalSurname)
	}
	var nonEmpty []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}

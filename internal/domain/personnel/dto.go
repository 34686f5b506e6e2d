package personnel

import (
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/validator"
)

type CreatePersonnelRequest struct {
	WorkerCode      *string `json:"worker_code"`
	FirstName       string  `json:"first_name"`
	PaternalSurname *string `json:"paternal_surname"`
	MaternalSurname *string `json:"maternal_surname"`
	DocumentNumber  *string `json:"document_number"`
	Email           *string `json:"email"`
	HireDate        *string `json:"hire_date"`
	BirthDate       *string `json:"birth_date"`
	PhotoURL        *string `json:"photo_url"`
	Position        *string `json:"position"`
}

func (r *CreatePersonnelRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if r.WorkerCode != nil && !validator.IsValidWorkerCode(*r.WorkerCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_code",
			Message: "worker_code must be 3-20 letters, digits or dashes",
		})
	}

	if r.DocumentNumber != nil && !validator.IsValidDocumentNumber(*r.DocumentNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "document_number",
			Message: "document_number must be 8-15 digits",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must use yyyy-MM-dd format",
			})
		}
	}

	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birth_date",
				Message: "birth_date must use yyyy-MM-dd format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePersonnelRequest struct {
	CreatePersonnelRequest
}

type PersonnelResponse struct {
	ID              int64   `json:"id"`
	WorkerCode      *string `json:"worker_code"`
	FirstName       string  `json:"first_name"`
	PaternalSurname *string `json:"paternal_surname"`
	MaternalSurname *string `json:"maternal_surname"`
	FullName        string  `json:"full_name"`
	DocumentNumber  *string `json:"document_number"`
	Email           *string `json:"email"`
	HireDate        *string `json:"hire_date"`
	BirthDate       *string `json:"birth_date"`
	PhotoURL        *string `json:"photo_url"`
	Position        *string `json:"position"`
}

func ToResponse(p Personnel) PersonnelResponse {
	return PersonnelResponse{
		ID:              p.ID,
		WorkerCode:      p.WorkerCode,
		FirstName:       p.FirstName,
		PaternalSurname: p.PaternalSurname,
		MaternalSurname: p.MaternalSurname,
		FullName:        p.FullName(),
		DocumentNumber:  p.DocumentNumber,
		Email:           p.Email,
		HireDate:        p.HireDate,
		BirthDate:       p.BirthDate,
		PhotoURL:        p.PhotoURL,
		Position:        p.Position,
	}
}

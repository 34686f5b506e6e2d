package personnel

import (
	"context"
	"errors"
	"fmt"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/personnel"
)

type PersonnelServiceImpl struct {
	personnelRepo personnel.PersonnelRepository
	eventRepo     attendance.EventRepository
}

func NewPersonnelService(personnelRepo personnel.PersonnelRepository, eventRepo attendance.EventRepository) personnel.PersonnelService {
	return &PersonnelServiceImpl{
		personnelRepo: personnelRepo,
		eventRepo:     eventRepo,
	}
}

// CreatePersonnel implements personnel.PersonnelService.
func (s *PersonnelServiceImpl) CreatePersonnel(ctx context.Context, req personnel.CreatePersonnelRequest) (personnel.PersonnelResponse, error) {
	if err := req.Validate(); err != nil {
		return personnel.PersonnelResponse{}, err
	}

	if req.WorkerCode != nil {
		existing, err := s.personnelRepo.GetByWorkerCode(ctx, *req.WorkerCode)
		if err != nil {
			return personnel.PersonnelResponse{}, fmt.Errorf("failed to check worker code: %w", err)
		}
		if existing != nil {
			return personnel.PersonnelResponse{}, personnel.ErrWorkerCodeExists
		}
	}

	if req.DocumentNumber != nil {
		existing, err := s.personnelRepo.GetByDocumentNumber(ctx, *req.DocumentNumber)
		if err != nil {
			return personnel.PersonnelResponse{}, fmt.Errorf("failed to check document number: %w", err)
		}
		if existing != nil {
			return personnel.PersonnelResponse{}, personnel.ErrDocumentNumberExists
		}
	}

	created, err := s.personnelRepo.Create(ctx, personnel.Personnel{
		WorkerCode:      req.WorkerCode,
		FirstName:       req.FirstName,
		PaternalSurname: req.PaternalSurname,
		MaternalSurname: req.MaternalSurname,
		DocumentNumber:  req.DocumentNumber,
		Email:           req.Email,
		HireDate:        req.HireDate,
		BirthDate:       req.BirthDate,
		PhotoURL:        req.PhotoURL,
		Position:        req.Position,
	})
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}

	return personnel.ToResponse(created), nil
}

// GetPersonnel implements personnel.PersonnelService.
func (s *PersonnelServiceImpl) GetPersonnel(ctx context.Context, id int64) (personnel.PersonnelResponse, error) {
	p, err := s.personnelRepo.GetByID(ctx, id)
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}
	return personnel.ToResponse(p), nil
}

// ListPersonnel implements personnel.PersonnelService.
func (s *PersonnelServiceImpl) ListPersonnel(ctx context.Context) ([]personnel.PersonnelResponse, error) {
	list, err := s.personnelRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]personnel.PersonnelResponse, 0, len(list))
	for _, p := range list {
		responses = append(responses, personnel.ToResponse(p))
	}
	return responses, nil
}

// UpdatePersonnel implements personnel.PersonnelService.
func (s *PersonnelServiceImpl) UpdatePersonnel(ctx context.Context, id int64, req personnel.UpdatePersonnelRequest) (personnel.PersonnelResponse, error) {
	if err := req.Validate(); err != nil {
		return personnel.PersonnelResponse{}, err
	}

	current, err := s.personnelRepo.GetByID(ctx, id)
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}

	if req.WorkerCode != nil {
		existing, err := s.personnelRepo.GetByWorkerCode(ctx, *req.WorkerCode)
		if err != nil {
			return personnel.PersonnelResponse{}, fmt.Errorf("failed to check worker code: %w", err)
		}
		if existing != nil && existing.ID != id {
			return personnel.PersonnelResponse{}, personnel.ErrWorkerCodeExists
		}
	}

	if req.DocumentNumber != nil {
		existing, err := s.personnelRepo.GetByDocumentNumber(ctx, *req.DocumentNumber)
		if err != nil {
			return personnel.PersonnelResponse{}, fmt.Errorf("failed to check document number: %w", err)
		}
		if existing != nil && existing.ID != id {
			return personnel.PersonnelResponse{}, personnel.ErrDocumentNumberExists
		}
	}

	current.WorkerCode = req.WorkerCode
	current.FirstName = req.FirstName
	current.PaternalSurname = req.PaternalSurname
	current.MaternalSurname = req.MaternalSurname
	current.DocumentNumber = req.DocumentNumber
	current.Email = req.Email
	current.HireDate = req.HireDate
	current.BirthDate = req.BirthDate
	current.PhotoURL = req.PhotoURL
	current.Position = req.Position

	if err := s.personnelRepo.Update(ctx, current); err != nil {
		return personnel.PersonnelResponse{}, err
	}

	return personnel.ToResponse(current), nil
}

// DeletePersonnel implements personnel.PersonnelService. Records with
// attendance history are kept; deleting them would silently rewrite past
// reports.
func (s *PersonnelServiceImpl) DeletePersonnel(ctx context.Context, id int64) error {
	if _, err := s.personnelRepo.GetByID(ctx, id); err != nil {
		return err
	}

	events, err := s.eventRepo.List(ctx, attendance.EventFilter{PersonnelID: &id})
	if err != nil {
		return fmt.Errorf("failed to check attendance activity: %w", err)
	}
	if len(events) > 0 {
		return personnel.ErrPersonnelInUse
	}

	if err := s.personnelRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, personnel.ErrPersonnelNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete personnel: %w", err)
	}
	return nil
}

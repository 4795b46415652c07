package handler

import (
	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/dto"
	"github.com/GoArmGo/BookingApp/internal/usecase"
	"github.com/GoArmGo/BookingApp/internal/validation"
	"github.com/google/uuid"
)

// Функции ниже вызываются после validation.Validate*, поэтому ошибки разбора
// здесь возможны только при рассинхронизации правил.

func toCreateBookingInput(req dto.CreateBookingRequest) (usecase.CreateBookingInput, error) {
	start, err := validation.ParseTime(req.StartTime)
	if err != nil {
		return usecase.CreateBookingInput{}, domain.InvalidArgumentf("startTime must be a valid date string")
	}
	end, err := validation.ParseTime(req.EndTime)
	if err != nil {
		return usecase.CreateBookingInput{}, domain.InvalidArgumentf("endTime must be a valid date string")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return usecase.CreateBookingInput{}, domain.InvalidArgumentf("userId must be a UUID")
	}

	return usecase.CreateBookingInput{
		StartTime: start,
		EndTime:   end,
		Notes:     req.Notes,
		UserID:    userID,
	}, nil
}

func toUpdateBookingInput(req dto.UpdateBookingRequest) (usecase.UpdateBookingInput, error) {
	var in usecase.UpdateBookingInput

	if req.StartTime != nil {
		t, err := validation.ParseTime(*req.StartTime)
		if err != nil {
			return in, domain.InvalidArgumentf("startTime must be a valid date string")
		}
		in.StartTime = &t
	}
	if req.EndTime != nil {
		t, err := validation.ParseTime(*req.EndTime)
		if err != nil {
			return in, domain.InvalidArgumentf("endTime must be a valid date string")
		}
		in.EndTime = &t
	}
	if req.UserID != nil {
		id, err := uuid.Parse(*req.UserID)
		if err != nil {
			return in, domain.InvalidArgumentf("userId must be a UUID")
		}
		in.UserID = &id
	}
	if req.Status != nil {
		st, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			return in, err
		}
		in.Status = &st
	}
	if req.Notes.Set {
		in.Notes = req.Notes.Value
		in.ClearNotes = req.Notes.Value == nil
	}

	return in, nil
}

func toCreateUserInput(req dto.CreateUserRequest) usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	}
}

func toUpdateUserInput(req dto.UpdateUserRequest) usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	}
}

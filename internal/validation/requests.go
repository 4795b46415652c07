package validation

import (
	"strings"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/dto"
)

const minPasswordLength = 6

func ValidateCreateBooking(req dto.CreateBookingRequest) Errors {
	var errs Errors

	if !IsDateString(req.StartTime) {
		errs.add("startTime", "startTime must be a valid date string")
	}
	if !IsDateString(req.EndTime) {
		errs.add("endTime", "endTime must be a valid date string")
	} else if IsDateString(req.StartTime) {
		errs.addIf(IsAfter("endTime", &req.EndTime, "startTime", &req.StartTime))
	}
	if !IsUUID(req.UserID) {
		errs.add("userId", "userId must be a UUID")
	}

	return errs
}

func ValidateUpdateBooking(req dto.UpdateBookingRequest) Errors {
	var errs Errors

	if req.StartTime != nil && !IsDateString(*req.StartTime) {
		errs.add("startTime", "startTime must be a valid date string")
	}
	if req.EndTime != nil {
		if !IsDateString(*req.EndTime) {
			errs.add("endTime", "endTime must be a valid date string")
		} else if req.StartTime == nil || IsDateString(*req.StartTime) {
			errs.addIf(IsAfter("endTime", req.EndTime, "startTime", req.StartTime))
		}
	}
	if req.UserID != nil && !IsUUID(*req.UserID) {
		errs.add("userId", "userId must be a UUID")
	}
	if req.Status != nil && !IsEnum(*req.Status, statusNames()) {
		errs.add("status", "status must be one of the following values: "+strings.Join(statusNames(), ", "))
	}

	return errs
}

func ValidateCreateUser(req dto.CreateUserRequest) Errors {
	var errs Errors

	if !IsNotEmpty(req.Email) {
		errs.add("email", "email should not be empty")
	} else if !IsEmail(req.Email) {
		errs.add("email", "email must be an email")
	}
	if !IsNotEmpty(req.Name) {
		errs.add("name", "name should not be empty")
	}
	if !MinLength(req.Password, minPasswordLength) {
		errs.add("password", "password must be longer than or equal to 6 characters")
	}

	return errs
}

func ValidateUpdateUser(req dto.UpdateUserRequest) Errors {
	var errs Errors

	if req.Email != nil && !IsEmail(*req.Email) {
		errs.add("email", "email must be an email")
	}
	if req.Name != nil && !IsNotEmpty(*req.Name) {
		errs.add("name", "name should not be empty")
	}
	if req.Password != nil && !MinLength(*req.Password, minPasswordLength) {
		errs.add("password", "password must be longer than or equal to 6 characters")
	}

	return errs
}

func statusNames() []string {
	names := make([]string, len(domain.BookingStatuses))
	for i, st := range domain.BookingStatuses {
		names[i] = string(st)
	}
	return names
}

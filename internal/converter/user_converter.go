package converter

import (
	"go-barber-booking/internal/delivery/dto"
	"go-barber-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// UserToSummary converts a User entity to the embedded summary shape
func UserToSummary(user *entity.User) *dto.UserSummaryResponse {
	if user == nil || user.ID == uuid.Nil {
		return nil
	}
	return &dto.UserSummaryResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Phone:    user.Phone,
		Avatar:   user.Avatar,
	}
}

// UserToResponse converts a User entity to a full UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		Avatar:    user.Avatar,
		Bio:       user.Bio,
		Role:      entity.RoleNameFor(user.RoleID),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UsersToResponses converts a slice of User entities
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		resp := UserToResponse(&user)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

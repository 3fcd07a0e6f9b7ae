package dto

import "github.com/BruksfildServices01/salon-pos/internal/models"

type UserDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
	SalonID string `json:"salon_id"`
}

func User(u *models.User) UserDTO {
	return UserDTO{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Role:    u.Role,
		SalonID: u.SalonID,
	}
}

type SalonDTO struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	Timezone          string `json:"timezone"`
	MinAdvanceMinutes int    `json:"min_advance_minutes"`
}

func Salon(s *models.Salon) SalonDTO {
	return SalonDTO{
		ID:                s.ID,
		Name:              s.Name,
		Slug:              s.Slug,
		Phone:             s.Phone,
		Address:           s.Address,
		Timezone:          s.Timezone,
		MinAdvanceMinutes: s.MinAdvanceMinutes,
	}
}

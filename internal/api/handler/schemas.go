package handler

import "github.com/pulsepoint/wellness-api/internal/core/domain"

type registerRequest struct {
	Username    string `json:"username" validate:"required,max=100"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name" validate:"max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	WorkplaceID int64  `json:"workplace_id"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// validationResponse is the envelope for rejected registrations and entries.
type validationResponse struct {
	Error   string   `json:"error"`
	Reasons []string `json:"reasons"`
}

type metricsRequest struct {
	Mood      int `json:"mood" validate:"gte=1,lte=5"`
	Sleep     int `json:"sleep" validate:"gte=1,lte=5"`
	Stress    int `json:"stress" validate:"gte=1,lte=5"`
	Activity  int `json:"activity" validate:"gte=1,lte=5"`
	Nutrition int `json:"nutrition" validate:"gte=1,lte=5"`
}

func (r metricsRequest) toDomain() domain.Metrics {
	return domain.Metrics{
		Mood:      r.Mood,
		Sleep:     r.Sleep,
		Stress:    r.Stress,
		Activity:  r.Activity,
		Nutrition: r.Nutrition,
	}
}

type workplaceRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type grantRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin manager user"`
}

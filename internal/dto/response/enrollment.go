package response

import (
	"hotel-booking/internal/data/entity"
)

type EnrollmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	CPF  string `json:"cpf"`
}

func EnrollmentToResponse(enrollment *entity.Enrollment) *EnrollmentResponse {
	return &EnrollmentResponse{
		ID:   enrollment.ID,
		Name: enrollment.Name,
		CPF:  enrollment.CPF,
	}
}

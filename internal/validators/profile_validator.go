package validators

type UpdateProfileRequest struct {
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,phone_number"`
}

func ValidateUpdateProfileRequest(req *UpdateProfileRequest) ValidationErrors {
	return ValidateStruct(req)
}

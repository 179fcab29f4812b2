package validators

type ContactRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Subject   string `json:"subject" validate:"required,min=3,max=200"`
	Message   string `json:"message" validate:"required,min=10,max=5000"`
}

func ValidateContactRequest(req *ContactRequest) ValidationErrors {
	return ValidateStruct(req)
}

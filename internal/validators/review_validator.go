package validators

type CreateReviewRequest struct {
	CarID   string `json:"car_id" validate:"required,object_id"`
	Rating  int    `json:"rating" validate:"required,rating_value"`
	Comment string `json:"comment" validate:"required,min=3,max=2000"`
}

func ValidateCreateReviewRequest(req *CreateReviewRequest) ValidationErrors {
	return ValidateStruct(req)
}

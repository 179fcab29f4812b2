package validators

type CreateCarRequest struct {
	Make         string  `json:"make" validate:"required,min=1,max=100"`
	Model        string  `json:"model" validate:"required,min=1,max=100"`
	Year         int     `json:"year" validate:"required,min=1950,max=2100"`
	LicensePlate string  `json:"license_plate" validate:"required,license_plate"`
	DailyRate    string  `json:"daily_rate" validate:"required"`
	Latitude     float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Features     string  `json:"features" validate:"omitempty,max=2000"`
	CarType      string  `json:"car_type" validate:"required"`
	FuelType     string  `json:"fuel_type" validate:"required"`
}

type UpdateCarRequest struct {
	Make        string   `json:"make" validate:"omitempty,min=1,max=100"`
	Model       string   `json:"model" validate:"omitempty,min=1,max=100"`
	Year        int      `json:"year" validate:"omitempty,min=1950,max=2100"`
	DailyRate   string   `json:"daily_rate" validate:"omitempty"`
	IsAvailable *bool    `json:"is_available" validate:"omitempty"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Features    string   `json:"features" validate:"omitempty,max=2000"`
	CarType     string   `json:"car_type" validate:"omitempty"`
	FuelType    string   `json:"fuel_type" validate:"omitempty"`
}

func ValidateCreateCarRequest(req *CreateCarRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateUpdateCarRequest(req *UpdateCarRequest) ValidationErrors {
	return ValidateStruct(req)
}

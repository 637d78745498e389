package dto

type UserRegisterDTO struct {
	FullName string `json:"fullName" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type PartnerRegisterDTO struct {
	Name        string  `json:"name" validate:"required,max=100"`
	ContactName string  `json:"contactName" validate:"required,max=50"`
	Phone       string  `json:"phone" validate:"required,max=30"`
	Address     string  `json:"address" validate:"required,max=200"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	Lng         float64 `json:"lng"`
	Lat         float64 `json:"lat"`
}

type CredentialDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResultDTO struct {
	Token string      `json:"token"`
	Kind  string      `json:"kind"`
	ID    uint64      `json:"id"`
	Name  string      `json:"name"`
}

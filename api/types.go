// Package api holds the request and response types of the HTTP contract.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validation_errors"`
	RequestId        string            `json:"request_id,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type UserResponse struct {
	Id        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MovieRequest is used for both creation and update. Updates are a full
// replace: every field is applied to the stored movie, zero values
// included, so callers must resend the complete movie body.
type MovieRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description"`
	Genres       string `json:"genres"`
	Writer       string `json:"writer"`
	Director     string `json:"director"`
	CastMembers  string `json:"cast" validate:"required"`
	Language     string `json:"language"`
	Runtime      string `json:"runtime"`
	YearReleased int    `json:"year_released" validate:"required"`
}

type MovieResponse struct {
	Id           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Genres       string    `json:"genres"`
	Writer       string    `json:"writer"`
	Director     string    `json:"director"`
	CastMembers  string    `json:"cast"`
	Language     string    `json:"language"`
	Runtime      string    `json:"runtime"`
	YearReleased int       `json:"year_released"`
	OwnerId      int64     `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type MovieListResponse struct {
	Movies   []MovieResponse `json:"movies"`
	Metadata *Metadata       `json:"metadata,omitempty"`
}

type Metadata struct {
	CurrentPage  int `json:"current_page"`
	FirstPage    int `json:"first_page"`
	LastPage     int `json:"last_page"`
	PageSize     int `json:"page_size"`
	TotalRecords int `json:"total_records"`
}

type RatingRequest struct {
	Rating float64 `json:"rating"`
}

type RatingResponse struct {
	Id      int64   `json:"id"`
	MovieId int64   `json:"movie_id"`
	UserId  int64   `json:"user_id"`
	Rating  float64 `json:"rating"`
}

type CommentRequest struct {
	Comment string `json:"comment" validate:"required,max=1000"`
}

type CommentResponse struct {
	Id        int64     `json:"id"`
	MovieId   int64     `json:"movie_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type SystemInfo struct {
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"system_info"`
}

package inbound

import (
	"net/http"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserResponse struct {
	User
}

func (CreateUserResponse) StatusCode() int {
	return http.StatusCreated
}

func (CreateUserResponse) Message() string {
	return "user created"
}

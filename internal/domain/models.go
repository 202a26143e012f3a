package domain

import (
	"time"

	"github.com/google/uuid"
)

// Базовые идентификаторы
type UserID = uuid.UUID
type BookID = uuid.UUID
type ReviewID = uuid.UUID

// Роли пользователей
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Пользователь
type User struct {
	ID         UserID    `json:"uid"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       Role      `json:"role"`
	IsVerified bool      `json:"is_verified"`
	PassHash   []byte    `json:"-"` // никогда не отдаём наружу
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Книга
type Book struct {
	ID            BookID    `json:"uid"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Publisher     string    `json:"publisher"`
	PublishedDate time.Time `json:"published_date"`
	PageCount     int       `json:"page_count"`
	Language      string    `json:"language"`
	OwnerID       UserID    `json:"user_uid"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Отзыв на книгу: привязан к пользователю и книге
type Review struct {
	ID         ReviewID  `json:"uid"`
	Rating     int       `json:"rating"` // 1..5
	ReviewText string    `json:"review_text"`
	UserID     UserID    `json:"user_uid"`
	BookID     BookID    `json:"book_uid"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Патч книги: nil-поле — без изменения
type BookPatch struct {
	Title     *string `json:"title"`
	Author    *string `json:"author"`
	Publisher *string `json:"publisher"`
	PageCount *int    `json:"page_count"`
	Language  *string `json:"language"`
}

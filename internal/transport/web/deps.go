package web

import (
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/auth/guard"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
)

type Repos struct {
	Users   domain.UsersRepo
	Books   domain.BooksRepo
	Reviews domain.ReviewsRepo
}

type AuthDeps struct {
	Hasher      domain.PasswordHasher
	Tokens      domain.TokenManager
	Blacklist   domain.TokenBlacklist
	AccessGate  *guard.Gate
	RefreshGate *guard.Gate
}

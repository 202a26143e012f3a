package books

import (
	"log"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
)

type Handler struct {
	Log   *log.Logger
	Books domain.BooksRepo
}

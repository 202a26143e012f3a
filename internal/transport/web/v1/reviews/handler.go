package reviews

import (
	"log"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
)

type Handler struct {
	Log     *log.Logger
	Reviews domain.ReviewsRepo
	Books   domain.BooksRepo
}

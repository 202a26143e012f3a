package reviews

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/logx"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	v1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1"
)

type createRequest struct {
	Rating     int    `json:"rating"` // 1..5
	ReviewText string `json:"review_text"`
}

// Create godoc
// @Summary     Add review to book
// @Description Отзыв привязывается к книге и текущему пользователю.
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       book_id path string true "book id"
// @Param       request body createRequest true "rating (1..5), review_text"
// @Success     201 {object} domain.APIEnvelope{response=domain.Review}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /api/v1/reviews/book/{book_id} [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "reviews.create"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	claims, ok := domain.ClaimsFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	bookID, err := uuid.Parse(r.PathValue("book_id"))
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad book id", err, "raw", r.PathValue("book_id"))
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if !domain.ValidRating(req.Rating) || req.ReviewText == "" {
		logx.Error(h.Log, reqID, op, "validation failed", domain.ErrBadParams, "rating", req.Rating)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	// книга должна существовать
	if _, err := h.Books.BookByID(r.Context(), bookID); err != nil {
		logx.Error(h.Log, reqID, op, "book lookup failed", err, "book_id", bookID)
		v1.WriteDomainError(w, r, err)
		return
	}

	rv, err := h.Reviews.CreateReview(r.Context(), domain.Review{
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		UserID:     claims.Subject.UserID,
		BookID:     bookID,
	})
	if err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err, "book_id", bookID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "review_id", rv.ID, "book_id", bookID)
	v1.WriteCreated(w, r, rv)
}

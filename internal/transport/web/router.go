package web

import (
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/config"
	_ "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/docs"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/domain"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/mw"
	authv1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1/auth"
	booksv1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1/books"
	"github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1/health"
	reviewsv1 "github.com/vaishhnavi9/fasrtpi-beyond-crud/internal/transport/web/v1/reviews"
)

func newRouter(logger *log.Logger, cfg *config.Config, repos Repos, auth AuthDeps, cache domain.Cache) http.Handler {
	sub := func(name string) *log.Logger {
		return log.New(logger.Writer(), logger.Prefix()+"["+name+"] ", logger.Flags())
	}

	healthHandler := &health.Handler{Log: sub("health"), DB: repos.Users, Cache: cache}
	signupHandler := &authv1.HandlerSignup{Log: sub("auth"), Users: repos.Users, Hasher: auth.Hasher}
	loginHandler := &authv1.HandlerLogin{Log: sub("auth"), Cfg: cfg, Users: repos.Users, Hasher: auth.Hasher, Tokens: auth.Tokens}
	refreshHandler := &authv1.HandlerRefresh{Log: sub("auth"), Cfg: cfg, Users: repos.Users, Tokens: auth.Tokens}
	logoutHandler := &authv1.HandlerLogout{Log: sub("auth"), Blacklist: auth.Blacklist}
	meHandler := &authv1.HandlerMe{Log: sub("auth"), Users: repos.Users}
	booksHandler := &booksv1.Handler{Log: sub("books"), Books: repos.Books}
	reviewsHandler := &reviewsv1.Handler{Log: sub("reviews"), Reviews: repos.Reviews, Books: repos.Books}

	deps := mw.AuthDeps{Log: sub("mw"), AccessGate: auth.AccessGate, RefreshGate: auth.RefreshGate}
	bookRoles := []domain.Role{domain.RoleAdmin, domain.RoleUser}

	// охраняемые цепочки: токен-шлюз -> (ролевой шлюз) -> handler
	access := func(h http.HandlerFunc) http.Handler {
		return mw.RequireAccess(deps, h)
	}
	accessWithRoles := func(h http.HandlerFunc) http.Handler {
		return mw.RequireAccess(deps, mw.RequireRoles(deps.Log, bookRoles, h))
	}
	refresh := func(h http.HandlerFunc) http.Handler {
		return mw.RequireRefresh(deps, h)
	}

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /api/v1/healthz", healthHandler.Liveness)
	mux.HandleFunc("GET /api/v1/readyz", healthHandler.Readiness)

	// auth
	mux.HandleFunc("POST /api/v1/auth/signup", signupHandler.Signup)
	mux.HandleFunc("POST /api/v1/auth/login", loginHandler.Login)
	mux.Handle("GET /api/v1/auth/refresh_token", refresh(refreshHandler.Refresh))
	mux.Handle("GET /api/v1/auth/logout", access(logoutHandler.Logout))
	mux.Handle("GET /api/v1/auth/me", access(meHandler.Me))

	// books
	mux.Handle("GET /api/v1/books", accessWithRoles(booksHandler.List))
	mux.Handle("POST /api/v1/books", accessWithRoles(booksHandler.Create))
	mux.Handle("GET /api/v1/books/user/{user_uid}", accessWithRoles(booksHandler.ListByOwner))
	mux.Handle("GET /api/v1/books/{id}", accessWithRoles(booksHandler.GetOne))
	mux.Handle("PATCH /api/v1/books/{id}", accessWithRoles(booksHandler.Update))
	mux.Handle("DELETE /api/v1/books/{id}", accessWithRoles(booksHandler.Delete))

	// reviews
	mux.Handle("POST /api/v1/reviews/book/{book_id}", access(reviewsHandler.Create))
	mux.Handle("GET /api/v1/reviews/book/{book_id}", access(reviewsHandler.ListByBook))
	mux.Handle("DELETE /api/v1/reviews/{id}", access(reviewsHandler.Delete))

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mux))
}

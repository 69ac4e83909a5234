// Package gymmanager предоставляет маршруты для основного приложения.
package gymmanager

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/gym-manager/internal/http/handlers/schedule/booking"
	schedulecreate "github.com/magabrotheeeer/gym-manager/internal/http/handlers/schedule/create"
	schedulelist "github.com/magabrotheeeer/gym-manager/internal/http/handlers/schedule/list"
	scheduleremove "github.com/magabrotheeeer/gym-manager/internal/http/handlers/schedule/remove"
	"github.com/magabrotheeeer/gym-manager/internal/http/handlers/token/issue"
	"github.com/magabrotheeeer/gym-manager/internal/http/handlers/trainer/salary"
	usercreate "github.com/magabrotheeeer/gym-manager/internal/http/handlers/user/create"
	useredit "github.com/magabrotheeeer/gym-manager/internal/http/handlers/user/edit"
	userlist "github.com/magabrotheeeer/gym-manager/internal/http/handlers/user/list"
	userread "github.com/magabrotheeeer/gym-manager/internal/http/handlers/user/read"
	userremove "github.com/magabrotheeeer/gym-manager/internal/http/handlers/user/remove"
	"github.com/magabrotheeeer/gym-manager/internal/http/handlers/user/updatestatus"
	"github.com/magabrotheeeer/gym-manager/internal/http/middlewarectx"
	jwtlib "github.com/magabrotheeeer/gym-manager/internal/lib/jwt"
	scheduleservice "github.com/magabrotheeeer/gym-manager/internal/services/schedule"
	userservice "github.com/magabrotheeeer/gym-manager/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Набор открытых маршрутов повторяет наблюдаемое поведение веб-приложения:
// /jwt, POST /user и GET /schedules открыты для фронтенда, PATCH /trainer/{id}
// исторически тоже открыт. Менять политику доступа — продуктовое решение.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwtlib.Maker,
	userService *userservice.UserService, scheduleService *scheduleservice.ScheduleService) {
	// Глобальные middleware. URLFormat не подключаем: он срезает
	// "расширение" последнего сегмента пути, у /user/{email} это ".com".
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	// Открытые конечные точки
	r.Post("/jwt", issue.New(logger, jwtMaker).ServeHTTP)
	r.Post("/user", usercreate.New(logger, userService).ServeHTTP)
	r.Get("/schedules", schedulelist.New(logger, scheduleService).ServeHTTP)
	r.Patch("/trainer/{id}", salary.New(logger, userService).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Get("/users", userlist.New(logger, userService).ServeHTTP)
		r.Get("/user/{email}", userread.New(logger, userService).ServeHTTP)
		r.Delete("/users/{id}", userremove.New(logger, userService).ServeHTTP)
		r.Patch("/user/{id}", updatestatus.New(logger, userService).ServeHTTP)
		r.Patch("/edit-user/{id}", useredit.New(logger, userService).ServeHTTP)
		r.Post("/schedule", schedulecreate.New(logger, scheduleService).ServeHTTP)
		r.Delete("/schedule/{id}", scheduleremove.New(logger, scheduleService).ServeHTTP)
		r.Patch("/booking-schedule/{id}", booking.New(logger, scheduleService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
}

package user

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/user/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Get("/me", handler.Me)
		routerGroup.Patch("/me/theme", handler.ToggleTheme)
	})
}

// Me returns the profile of the authenticated user.
// @Summary Get current user
// @Description Retrieve the profile of the currently authenticated user.
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse] "User profile"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) Me(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	res, err := handler.service.Me(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current user")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User profile retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// ToggleTheme switches the authenticated user's UI theme between light and dark.
// @Summary Toggle theme
// @Description Flip the authenticated user's theme preference between light and dark.
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.ThemeResponse] "Updated theme"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me/theme [patch]
// @Security BearerAuth
func (handler *Handler) ToggleTheme(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleTheme")
	defer scope.End()

	res, err := handler.service.ToggleTheme(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle theme")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Theme toggled successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

package billing

import (
	"fmt"
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/billing/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Billing
	otel    otel.Otel
}

func New(service service.Billing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bills", func(routerGroup chi.Router) {
		routerGroup.Get("/{room_no}", handler.GetBill)
	})
}

// GetBill generates and downloads the PDF bill for a room's current booking.
// @Summary Generate a bill
// @Description Generate the PDF bill for the customer occupying the given room and stream it as a download.
// @Tags Billing
// @Produce application/pdf
// @Param room_no path integer true "Room number"
// @Success 200 {file} file "PDF bill"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bills/{room_no} [get]
// @Security BearerAuth
func (handler *Handler) GetBill(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBill")
	defer scope.End()

	roomNo, err := shared.ConvertStringToInt(chi.URLParam(request, constant.RequestParamRoomNo))
	if err != nil {
		err = failure.BadRequestFromString("room number must be an integer")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	bill, err := handler.service.GenerateBill(ctx, roomNo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate bill")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bill generated successfully")

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypePDF)
	writer.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", bill.FileName))
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(bill.Content); err != nil {
		log.Error().Err(err).Msg("failed to write bill response")
	}
}

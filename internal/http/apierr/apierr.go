// Package apierr переводит ошибки витрины в HTTP-статусы и тела ответов.
package apierr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/saya-shop/internal/catalog"
	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/http/response"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
	"github.com/magabrotheeeer/saya-shop/internal/services/shop"
	"github.com/magabrotheeeer/saya-shop/internal/storefront"
)

// Resolve возвращает статус и тело ответа для ошибки err.
func Resolve(err error) (int, response.Response) {
	var (
		verr  *checkout.ValidationError
		gerr  *checkout.GatewayError
		wrong *checkout.WrongStepError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, response.FieldError(string(verr.Field), verr.Message)
	case errors.As(err, &gerr):
		return http.StatusPaymentRequired, response.Error(storefront.MessageDeclined)
	case errors.As(err, &wrong):
		return http.StatusConflict, response.Error(wrong.Error())
	case errors.Is(err, checkout.ErrNotOpen):
		return http.StatusConflict, response.Error(checkout.ErrNotOpen.Error())
	case errors.Is(err, checkout.ErrAlreadyOpen):
		return http.StatusConflict, response.Error(checkout.ErrAlreadyOpen.Error())
	case errors.Is(err, storefront.ErrClosed):
		return http.StatusConflict, response.Error(storefront.ErrClosed.Error())
	case errors.Is(err, catalog.ErrUnknownPackage):
		return http.StatusNotFound, response.Error(catalog.ErrUnknownPackage.Error())
	case errors.Is(err, shop.ErrUnknownAction):
		return http.StatusNotFound, response.Error(shop.ErrUnknownAction.Error())
	case errors.Is(err, catalog.ErrUnknownSection):
		return http.StatusUnprocessableEntity, response.Error(catalog.ErrUnknownSection.Error())
	case errors.Is(err, checkout.ErrUnknownMethod):
		return http.StatusUnprocessableEntity, response.Error(checkout.ErrUnknownMethod.Error())
	case errors.Is(err, checkout.ErrUnknownField):
		return http.StatusUnprocessableEntity, response.Error(checkout.ErrUnknownField.Error())
	default:
		return http.StatusInternalServerError, response.Error("internal server error")
	}
}

// Render пишет ответ для ошибки err. Внутренние ошибки логируются как Error,
// остальные как Info.
func Render(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, resp := Resolve(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", sl.Err(err))
	} else {
		log.Info("request rejected", slog.Int("status", status), sl.Err(err))
	}
	render.Status(r, status)
	render.JSON(w, r, resp)
}

package controllers

import (
	"net/http"

	"github.com/ZeroVik/PlayScaleFrontend/api/middleware"
	"github.com/ZeroVik/PlayScaleFrontend/api/responses"
	"github.com/ZeroVik/PlayScaleFrontend/api/validators"
	"github.com/ZeroVik/PlayScaleFrontend/internal/checkout"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/logger"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/types"
)

type checkoutRequest struct {
	Address types.Address `json:"address" validate:"required"`
}

// Checkout places an order from the current cart.
func Checkout(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.SessionFromContext(r.Context())

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		receipt, err := svc.Submit(r.Context(), sess, payload.Address)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}

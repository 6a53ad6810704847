package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ZeroVik/PlayScaleFrontend/api/middleware"
	"github.com/ZeroVik/PlayScaleFrontend/api/responses"
	"github.com/ZeroVik/PlayScaleFrontend/api/validators"
	"github.com/ZeroVik/PlayScaleFrontend/internal/orders"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/logger"
)

// OrderHistory lists the caller's orders, newest first.
func OrderHistory(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.SessionFromContext(r.Context())

		history, err := svc.History(r.Context(), sess)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, history)
	}
}

// OrderDetail renders one order from the caller's history.
func OrderDetail(svc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.SessionFromContext(r.Context())

		orderID, err := validators.PathInt64(chi.URLParam(r, "orderId"), "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Find(r.Context(), sess, orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ZeroVik/PlayScaleFrontend/api/responses"
	"github.com/ZeroVik/PlayScaleFrontend/api/validators"
	"github.com/ZeroVik/PlayScaleFrontend/internal/catalog"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/enums"
	pkgerrors "github.com/ZeroVik/PlayScaleFrontend/pkg/errors"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/logger"
)

// CatalogList renders the product grid. Filters compose: search narrows by
// name, categories union, condition narrows further, sort orders the result.
func CatalogList(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := catalogQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		listing, err := svc.List(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, listing)
	}
}

// CatalogDetail renders one product with its related strip.
func CatalogDetail(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathInt64(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.Detail(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

// CatalogCategories lists categories for the filter sidebar.
func CatalogCategories(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.Categories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, categories)
	}
}

func catalogQuery(r *http.Request) (catalog.Query, error) {
	var query catalog.Query

	query.Search = strings.TrimSpace(r.URL.Query().Get("q"))

	categories, err := validators.ParseQueryInt64Set(r, "category")
	if err != nil {
		return catalog.Query{}, err
	}
	query.Categories = categories

	if raw := strings.TrimSpace(r.URL.Query().Get("condition")); raw != "" {
		condition, err := enums.ParseProductCondition(raw)
		if err != nil {
			return catalog.Query{}, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		query.Condition = condition
	}

	sortOrder, err := enums.ParseSortOrder(strings.TrimSpace(r.URL.Query().Get("sort")))
	if err != nil {
		return catalog.Query{}, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}
	query.Sort = sortOrder

	return query, nil
}

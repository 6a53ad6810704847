package catalog

import (
	"context"

	"github.com/ZeroVik/PlayScaleFrontend/pkg/logger"
	"github.com/ZeroVik/PlayScaleFrontend/pkg/shop"
)

// relatedLimit caps the related strip on the product detail view.
const relatedLimit = 4

type shopAPI interface {
	ListProducts(ctx context.Context) ([]shop.Product, error)
	ListCategories(ctx context.Context) ([]shop.Category, error)
	GetProduct(ctx context.Context, id int64) (*shop.Product, error)
	RelatedProducts(ctx context.Context, categoryName string) ([]shop.Product, error)
}

// Listing is the rendered catalog page: the filtered product set plus the
// category list driving the filter sidebar.
type Listing struct {
	Products   []shop.Product  `json:"products"`
	Categories []shop.Category `json:"categories"`
	Total      int             `json:"total"`
}

// Detail is the rendered product page with its related strip.
type Detail struct {
	Product *shop.Product  `json:"product"`
	Related []shop.Product `json:"related"`
}

// Service renders the public catalog views from the shop API.
type Service struct {
	api  shopAPI
	logg *logger.Logger
}

func NewService(api shopAPI, logg *logger.Logger) *Service {
	return &Service{api: api, logg: logg}
}

// List fetches the catalog and applies the query. The category list is best
// effort: a failed category fetch still renders the product grid.
func (s *Service) List(ctx context.Context, q Query) (*Listing, error) {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		s.logg.Warn(ctx, "failed to list categories for catalog sidebar")
		categories = []shop.Category{}
	}

	filtered := Apply(products, q)
	return &Listing{
		Products:   filtered,
		Categories: categories,
		Total:      len(filtered),
	}, nil
}

// Categories fetches the category list on its own.
func (s *Service) Categories(ctx context.Context) ([]shop.Category, error) {
	return s.api.ListCategories(ctx)
}

// Detail fetches one product and its related strip. Related products share
// the category, exclude the product itself and are capped. A failed related
// fetch still renders the product.
func (s *Service) Detail(ctx context.Context, id int64) (*Detail, error) {
	product, err := s.api.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &Detail{Product: product, Related: []shop.Product{}}

	related, err := s.api.RelatedProducts(ctx, product.CategoryName)
	if err != nil {
		s.logg.Warn(ctx, "failed to fetch related products")
		return detail, nil
	}
	for _, p := range related {
		if p.ID == product.ID {
			continue
		}
		detail.Related = append(detail.Related, p)
		if len(detail.Related) == relatedLimit {
			break
		}
	}
	return detail, nil
}

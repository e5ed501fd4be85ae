package specification

import (
	"context"
	"net/http"
	"strings"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/pkg/apperror"
)

var (
	ErrNoSpecification = apperror.New(
		apperror.CodeInvalidInput,
		"Product has no available size or color",
		http.StatusUnprocessableEntity,
	)

	ErrVariantUnavailable = apperror.New(
		apperror.CodeInvalidInput,
		"Selected size or color is not available",
		http.StatusUnprocessableEntity,
	)
)

// Selection is what the shopper picked on the product page. Any field may
// be empty.
type Selection struct {
	ID    string
	Size  string
	Color string
}

func (s Selection) matches(spec apiclient.Specification) bool {
	if s.Size != "" && !strings.EqualFold(s.Size, spec.Size) {
		return false
	}
	if s.Color != "" && !strings.EqualFold(s.Color, spec.Color) {
		return false
	}
	return true
}

//go:generate mockgen -source=resolver.go -destination=../mock/specification/resolver_mock.go -package=mock
type API interface {
	ListProductSpecifications(ctx context.Context, productID string) ([]apiclient.Specification, error)
}

// Resolver picks the specification an authenticated cart or wishlist entry
// is keyed on.
type Resolver struct {
	api API
}

func NewResolver(api API) *Resolver {
	return &Resolver{api: api}
}

// Resolve returns the explicit specification id when there is one. Otherwise
// it fetches the product's specifications and takes the one matching the
// chosen size and color, or the first one when nothing was chosen.
func (r *Resolver) Resolve(ctx context.Context, productID string, sel Selection) (string, error) {
	if sel.ID != "" {
		return sel.ID, nil
	}

	specs, err := r.api.ListProductSpecifications(ctx, productID)
	if err != nil {
		return "", err
	}
	if len(specs) == 0 {
		return "", ErrNoSpecification
	}
	if sel.Size == "" && sel.Color == "" {
		return specs[0].ID, nil
	}
	for _, spec := range specs {
		if sel.matches(spec) {
			return spec.ID, nil
		}
	}
	return "", ErrVariantUnavailable
}

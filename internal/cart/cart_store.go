package cart

import (
	"context"
	"strings"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/specification"

	"github.com/shopspring/decimal"
)

const maxQuantity = 99

// Store is where the lines of one cart live. Guests keep theirs in the
// gateway, signed-in shoppers in the store API.
type Store interface {
	Lines(ctx context.Context) ([]Line, error)
	Add(ctx context.Context, req AddItemRequest) error
	SetQuantity(ctx context.Context, key string, qty int) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

//go:generate mockgen -source=cart_store.go -destination=../mock/cart/cart_store_mock.go -package=mock
type RemoteAPI interface {
	GetProduct(ctx context.Context, id string) (apiclient.Product, error)
	GetCart(ctx context.Context, token string) ([]apiclient.CartItem, error)
	AddCartItem(ctx context.Context, token string, req apiclient.AddCartItemRequest) (apiclient.CartItem, error)
	UpdateCartItem(ctx context.Context, token, itemID string, quantity int) (apiclient.CartItem, error)
	RemoveCartItem(ctx context.Context, token, itemID string) error
	ClearCart(ctx context.Context, token string) error
	ApplyCoupon(ctx context.Context, token string, req apiclient.ApplyCouponRequest) (apiclient.Coupon, error)
}

type SpecResolver interface {
	Resolve(ctx context.Context, productID string, sel specification.Selection) (string, error)
}

// ==================== GUEST ====================

type localStore struct {
	sessionID string
	repo      GuestRepository
	api       RemoteAPI
}

func (s *localStore) Lines(ctx context.Context) ([]Line, error) {
	return s.repo.Load(ctx, s.sessionID)
}

func (s *localStore) Add(ctx context.Context, req AddItemRequest) error {
	product, err := s.api.GetProduct(ctx, req.ProductID)
	if err != nil {
		return err
	}

	key := GuestKey(req.ProductID, req.Size, req.Color)
	_, err = s.repo.Update(ctx, s.sessionID, func(lines []Line) ([]Line, error) {
		for i := range lines {
			if lines[i].Key != key {
				continue
			}
			if lines[i].Quantity+req.Quantity > maxQuantity {
				return nil, ErrInvalidQty
			}
			lines[i].Quantity += req.Quantity
			return lines, nil
		}

		spec := matchSpecification(product.Specifications, req)
		line := Line{
			Key:       key,
			ProductID: req.ProductID,
			Name:      product.Name,
			Size:      req.Size,
			Color:     req.Color,
			ImageURL:  product.ImageURL,
			Quantity:  req.Quantity,
			UnitPrice: unitPrice(product.Price, spec),
		}
		if spec != nil {
			line.SpecificationID = spec.ID
		}
		return append(lines, line), nil
	})
	return err
}

func (s *localStore) SetQuantity(ctx context.Context, key string, qty int) error {
	_, err := s.repo.Update(ctx, s.sessionID, func(lines []Line) ([]Line, error) {
		for i := range lines {
			if lines[i].Key == key {
				lines[i].Quantity = qty
				return lines, nil
			}
		}
		return nil, ErrCartItemNotFound
	})
	return err
}

func (s *localStore) Remove(ctx context.Context, key string) error {
	_, err := s.repo.Update(ctx, s.sessionID, func(lines []Line) ([]Line, error) {
		out := lines[:0]
		found := false
		for _, l := range lines {
			if l.Key == key {
				found = true
				continue
			}
			out = append(out, l)
		}
		if !found {
			return nil, ErrCartItemNotFound
		}
		return out, nil
	})
	return err
}

func (s *localStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, s.sessionID)
}

// ==================== AUTHENTICATED ====================

type remoteStore struct {
	token    string
	api      RemoteAPI
	resolver SpecResolver
}

func (s *remoteStore) Lines(ctx context.Context) ([]Line, error) {
	items, err := s.api.GetCart(ctx, s.token)
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, lineFromAPI(it))
	}
	return lines, nil
}

func (s *remoteStore) Add(ctx context.Context, req AddItemRequest) error {
	specID, err := s.resolver.Resolve(ctx, req.ProductID, specification.Selection{
		ID:    req.SpecificationID,
		Size:  req.Size,
		Color: req.Color,
	})
	if err != nil {
		return err
	}

	_, err = s.api.AddCartItem(ctx, s.token, apiclient.AddCartItemRequest{
		ProductID:       req.ProductID,
		SpecificationID: specID,
		Quantity:        req.Quantity,
	})
	return err
}

func (s *remoteStore) SetQuantity(ctx context.Context, key string, qty int) error {
	_, err := s.api.UpdateCartItem(ctx, s.token, key, qty)
	return err
}

func (s *remoteStore) Remove(ctx context.Context, key string) error {
	return s.api.RemoveCartItem(ctx, s.token, key)
}

func (s *remoteStore) Clear(ctx context.Context) error {
	return s.api.ClearCart(ctx, s.token)
}

// ==================== HELPERS ====================

func lineFromAPI(it apiclient.CartItem) Line {
	l := Line{
		Key:             it.ID,
		ProductID:       it.ProductID,
		SpecificationID: it.SpecificationID,
		Quantity:        it.Quantity,
		UnitPrice:       it.UnitPrice,
	}
	if it.Product != nil {
		l.Name = it.Product.Name
		l.ImageURL = it.Product.ImageURL
	}
	if it.Specification != nil {
		l.Size = it.Specification.Size
		l.Color = it.Specification.Color
	}
	if l.UnitPrice.IsZero() && it.Product != nil {
		l.UnitPrice = unitPrice(it.Product.Price, it.Specification)
	}
	return l
}

// unitPrice adds the variant's price delta to the product's base price.
func unitPrice(base decimal.Decimal, spec *apiclient.Specification) decimal.Decimal {
	if spec == nil {
		return base
	}
	return base.Add(spec.PriceDelta)
}

func matchSpecification(specs []apiclient.Specification, req AddItemRequest) *apiclient.Specification {
	for i := range specs {
		sp := specs[i]
		if req.SpecificationID != "" {
			if sp.ID == req.SpecificationID {
				return &specs[i]
			}
			continue
		}
		if req.Size == "" && req.Color == "" {
			return nil
		}
		if (req.Size == "" || strings.EqualFold(sp.Size, req.Size)) &&
			(req.Color == "" || strings.EqualFold(sp.Color, req.Color)) {
			return &specs[i]
		}
	}
	return nil
}

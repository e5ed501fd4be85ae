package wishlist

import (
	"context"
	"strings"
	"time"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/specification"
)

// Store holds the entries of one wishlist.
type Store interface {
	Entries(ctx context.Context) ([]Entry, error)
	Add(ctx context.Context, req ItemRequest) (bool, error)
	Remove(ctx context.Context, key string) error
}

//go:generate mockgen -source=wishlist_store.go -destination=../mock/wishlist/wishlist_store_mock.go -package=mock
type RemoteAPI interface {
	GetProduct(ctx context.Context, id string) (apiclient.Product, error)
	GetWishlist(ctx context.Context, token string) ([]apiclient.WishlistItem, error)
	AddWishlistItem(ctx context.Context, token string, req apiclient.AddWishlistItemRequest) (apiclient.WishlistItem, error)
	RemoveWishlistItem(ctx context.Context, token, itemID string) error
}

type SpecResolver interface {
	Resolve(ctx context.Context, productID string, sel specification.Selection) (string, error)
}

// ==================== GUEST ====================

type localStore struct {
	sessionID string
	repo      GuestRepository
	api       RemoteAPI
	now       func() time.Time
}

func (s *localStore) Entries(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx, s.sessionID)
}

func (s *localStore) Add(ctx context.Context, req ItemRequest) (bool, error) {
	product, err := s.api.GetProduct(ctx, req.ProductID)
	if err != nil {
		return false, err
	}

	return s.repo.Add(ctx, s.sessionID, Entry{
		Key:       req.ProductID,
		ProductID: req.ProductID,
		Name:      product.Name,
		Size:      req.Size,
		Color:     req.Color,
		ImageURL:  product.ImageURL,
		Price:     product.Price,
		AddedAt:   s.now().UTC(),
	})
}

func (s *localStore) Remove(ctx context.Context, key string) error {
	removed, err := s.repo.Remove(ctx, s.sessionID, key)
	if err != nil {
		return err
	}
	if !removed {
		return ErrItemNotFound
	}
	return nil
}

// ==================== AUTHENTICATED ====================

type remoteStore struct {
	token    string
	api      RemoteAPI
	resolver SpecResolver
}

func (s *remoteStore) Entries(ctx context.Context) ([]Entry, error) {
	items, err := s.api.GetWishlist(ctx, s.token)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		entries = append(entries, entryFromAPI(it))
	}
	return entries, nil
}

func (s *remoteStore) Add(ctx context.Context, req ItemRequest) (bool, error) {
	specID, err := resolve(ctx, s.resolver, req)
	if err != nil {
		return false, err
	}

	_, err = s.api.AddWishlistItem(ctx, s.token, apiclient.AddWishlistItemRequest{
		ProductID:       req.ProductID,
		SpecificationID: specID,
	})
	if err != nil {
		// the store answers 409 when the entry exists
		if apiclient.IsConflict(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *remoteStore) Remove(ctx context.Context, key string) error {
	return s.api.RemoveWishlistItem(ctx, s.token, key)
}

func resolve(ctx context.Context, r SpecResolver, req ItemRequest) (string, error) {
	if req.SpecificationID != "" {
		return req.SpecificationID, nil
	}
	return r.Resolve(ctx, req.ProductID, specification.Selection{Size: req.Size, Color: req.Color})
}

func entryFromAPI(it apiclient.WishlistItem) Entry {
	e := Entry{
		Key:             it.ID,
		ProductID:       it.ProductID,
		SpecificationID: it.SpecificationID,
	}
	if it.Product != nil {
		e.Name = it.Product.Name
		e.ImageURL = it.Product.ImageURL
		e.Price = it.Product.Price
	}
	if it.Specification != nil {
		e.Size = it.Specification.Size
		e.Color = it.Specification.Color
		e.Price = e.Price.Add(it.Specification.PriceDelta)
	}
	return e
}

// find returns the entry for product (and specification when given).
func find(entries []Entry, productID, specID string) (Entry, bool) {
	for _, e := range entries {
		if e.ProductID != productID {
			continue
		}
		if specID == "" || e.SpecificationID == "" || strings.EqualFold(e.SpecificationID, specID) {
			return e, true
		}
	}
	return Entry{}, false
}

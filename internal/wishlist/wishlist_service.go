package wishlist

import (
	"context"
	"strings"
	"time"

	"go-clothing-store/internal/outbox"
	"go-clothing-store/internal/session"
)

type Service interface {
	AddToWishlist(ctx context.Context, sess session.Session, req ItemRequest) (WishlistResponse, error)
	RemoveFromWishlist(ctx context.Context, sess session.Session, key string) (WishlistResponse, error)
	// ToggleWishlist removes the entry when present and adds it otherwise.
	ToggleWishlist(ctx context.Context, sess session.Session, req ItemRequest) (ToggleResponse, error)

	IsInWishlist(ctx context.Context, sess session.Session, productID, specificationID string) (bool, error)
	IsProductWishlisted(ctx context.Context, sess session.Session, productID string) (bool, error)
	Check(ctx context.Context, sess session.Session, productID, specificationID string) (CheckResponse, error)
	List(ctx context.Context, sess session.Session) (WishlistResponse, error)
}

type service struct {
	guest    GuestRepository
	api      RemoteAPI
	resolver SpecResolver
	events   outbox.Recorder
	now      func() time.Time
}

func NewService(guest GuestRepository, api RemoteAPI, resolver SpecResolver, events outbox.Recorder) Service {
	if events == nil {
		events = outbox.NopRecorder{}
	}
	return &service{
		guest:    guest,
		api:      api,
		resolver: resolver,
		events:   events,
		now:      time.Now,
	}
}

func (s *service) storeFor(sess session.Session) Store {
	if sess.IsAuthenticated() {
		return &remoteStore{token: sess.Token, api: s.api, resolver: s.resolver}
	}
	return &localStore{sessionID: sess.ID, repo: s.guest, api: s.api, now: s.now}
}

func (s *service) emit(ctx context.Context, sess session.Session, eventType, productID string) {
	payload := map[string]any{"product_id": productID, "mode": sess.State().String()}
	if sess.IsAuthenticated() {
		payload["user_id"] = sess.User.ID
	}
	_ = s.events.Record(ctx, outbox.AggregateWishlist, sess.ID, eventType, payload)
}

func (s *service) AddToWishlist(ctx context.Context, sess session.Session, req ItemRequest) (WishlistResponse, error) {
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.ProductID == "" {
		return WishlistResponse{}, ErrInvalidProductID
	}

	added, err := s.storeFor(sess).Add(ctx, req)
	if err != nil {
		return WishlistResponse{}, err
	}
	if added {
		s.emit(ctx, sess, outbox.EventWishlistAdded, req.ProductID)
	}
	return s.List(ctx, sess)
}

func (s *service) RemoveFromWishlist(ctx context.Context, sess session.Session, key string) (WishlistResponse, error) {
	if err := s.storeFor(sess).Remove(ctx, key); err != nil {
		return WishlistResponse{}, err
	}
	s.emit(ctx, sess, outbox.EventWishlistRemoved, key)
	return s.List(ctx, sess)
}

func (s *service) ToggleWishlist(ctx context.Context, sess session.Session, req ItemRequest) (ToggleResponse, error) {
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.ProductID == "" {
		return ToggleResponse{}, ErrInvalidProductID
	}

	store := s.storeFor(sess)
	if sess.IsAuthenticated() {
		specID, err := resolve(ctx, s.resolver, req)
		if err != nil {
			return ToggleResponse{}, err
		}
		req.SpecificationID = specID
	}

	entries, err := store.Entries(ctx)
	if err != nil {
		return ToggleResponse{}, err
	}

	added := false
	if e, ok := find(entries, req.ProductID, req.SpecificationID); ok {
		if err := store.Remove(ctx, e.Key); err != nil {
			return ToggleResponse{}, err
		}
		s.emit(ctx, sess, outbox.EventWishlistRemoved, req.ProductID)
	} else {
		if _, err := store.Add(ctx, req); err != nil {
			return ToggleResponse{}, err
		}
		added = true
		s.emit(ctx, sess, outbox.EventWishlistAdded, req.ProductID)
	}

	list, err := s.List(ctx, sess)
	if err != nil {
		return ToggleResponse{}, err
	}
	return ToggleResponse{Added: added, Wishlist: list}, nil
}

func (s *service) IsInWishlist(ctx context.Context, sess session.Session, productID, specificationID string) (bool, error) {
	entries, err := s.storeFor(sess).Entries(ctx)
	if err != nil {
		return false, err
	}
	_, ok := find(entries, productID, specificationID)
	return ok, nil
}

func (s *service) IsProductWishlisted(ctx context.Context, sess session.Session, productID string) (bool, error) {
	return s.IsInWishlist(ctx, sess, productID, "")
}

func (s *service) Check(ctx context.Context, sess session.Session, productID, specificationID string) (CheckResponse, error) {
	entries, err := s.storeFor(sess).Entries(ctx)
	if err != nil {
		return CheckResponse{}, err
	}
	_, exact := find(entries, productID, specificationID)
	_, product := find(entries, productID, "")
	return CheckResponse{InWishlist: exact, ProductWishlisted: product}, nil
}

func (s *service) List(ctx context.Context, sess session.Session) (WishlistResponse, error) {
	entries, err := s.storeFor(sess).Entries(ctx)
	if err != nil {
		return WishlistResponse{}, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return WishlistResponse{
		Mode:      sess.State().String(),
		Items:     entries,
		ItemCount: len(entries),
	}, nil
}

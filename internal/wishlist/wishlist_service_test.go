package wishlist_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-clothing-store/internal/apiclient"
	wishlistMock "go-clothing-store/internal/mock/wishlist"
	"go-clothing-store/internal/session"
	"go-clothing-store/internal/specification"
	"go-clothing-store/internal/wishlist"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service  wishlist.Service
	guest    *wishlistMock.MockGuestRepository
	api      *wishlistMock.MockRemoteAPI
	resolver *wishlistMock.MockSpecResolver
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := &serviceDeps{
		guest:    wishlistMock.NewMockGuestRepository(ctrl),
		api:      wishlistMock.NewMockRemoteAPI(ctrl),
		resolver: wishlistMock.NewMockSpecResolver(ctrl),
	}
	d.service = wishlist.NewService(d.guest, d.api, d.resolver, nil)
	return d
}

var (
	guestSession = session.Session{ID: "sid-1"}
	userSession  = session.Session{ID: "sid-1", Token: "tok", User: &session.User{ID: "u-1"}}
)

// memoryGuest backs the guest repository mock with a map so toggles can be
// chained.
type memoryGuest map[string]wishlist.Entry

func (m memoryGuest) wire(repo *wishlistMock.MockGuestRepository) {
	repo.EXPECT().List(gomock.Any(), "sid-1").DoAndReturn(func(context.Context, string) ([]wishlist.Entry, error) {
		out := []wishlist.Entry{}
		for _, e := range m {
			out = append(out, e)
		}
		return out, nil
	}).AnyTimes()
	repo.EXPECT().Add(gomock.Any(), "sid-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, e wishlist.Entry) (bool, error) {
		if _, ok := m[e.ProductID]; ok {
			return false, nil
		}
		m[e.ProductID] = e
		return true, nil
	}).AnyTimes()
	repo.EXPECT().Remove(gomock.Any(), "sid-1", gomock.Any()).DoAndReturn(func(_ context.Context, _, productID string) (bool, error) {
		_, ok := m[productID]
		delete(m, productID)
		return ok, nil
	}).AnyTimes()
}

func TestWishlistService_GuestToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	d := setupServiceTest(t)
	store := memoryGuest{}
	store.wire(d.guest)

	d.api.EXPECT().GetProduct(ctx, "p1").Return(apiclient.Product{ID: "p1", Name: "Denim Jacket", Price: decimal.NewFromInt(80)}, nil)

	before, err := d.service.IsProductWishlisted(ctx, guestSession, "p1")
	require.NoError(t, err)
	assert.False(t, before)

	res, err := d.service.ToggleWishlist(ctx, guestSession, wishlist.ItemRequest{ProductID: "p1"})
	require.NoError(t, err)
	assert.True(t, res.Added)
	assert.Equal(t, 1, res.Wishlist.ItemCount)
	assert.Equal(t, "Denim Jacket", res.Wishlist.Items[0].Name)

	res, err = d.service.ToggleWishlist(ctx, guestSession, wishlist.ItemRequest{ProductID: "p1"})
	require.NoError(t, err)
	assert.False(t, res.Added)
	assert.Equal(t, 0, res.Wishlist.ItemCount)

	after, err := d.service.IsProductWishlisted(ctx, guestSession, "p1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWishlistService_AddToWishlist(t *testing.T) {
	ctx := context.Background()

	t.Run("guest_duplicate_is_noop", func(t *testing.T) {
		d := setupServiceTest(t)
		store := memoryGuest{"p1": {Key: "p1", ProductID: "p1", AddedAt: time.Now()}}
		store.wire(d.guest)
		d.api.EXPECT().GetProduct(ctx, "p1").Return(apiclient.Product{ID: "p1"}, nil)

		res, err := d.service.AddToWishlist(ctx, guestSession, wishlist.ItemRequest{ProductID: "p1"})

		require.NoError(t, err)
		assert.Equal(t, 1, res.ItemCount)
	})

	t.Run("blank_product", func(t *testing.T) {
		d := setupServiceTest(t)

		_, err := d.service.AddToWishlist(ctx, guestSession, wishlist.ItemRequest{ProductID: " "})

		assert.ErrorIs(t, err, wishlist.ErrInvalidProductID)
	})

	t.Run("authenticated_resolves_first_specification", func(t *testing.T) {
		d := setupServiceTest(t)

		d.resolver.EXPECT().Resolve(ctx, "p1", specification.Selection{}).Return("s1", nil)
		d.api.EXPECT().AddWishlistItem(ctx, "tok", apiclient.AddWishlistItemRequest{ProductID: "p1", SpecificationID: "s1"}).
			Return(apiclient.WishlistItem{ID: "w-1"}, nil)
		d.api.EXPECT().GetWishlist(ctx, "tok").Return([]apiclient.WishlistItem{
			{ID: "w-1", ProductID: "p1", SpecificationID: "s1", Product: &apiclient.Product{Name: "Tee", Price: decimal.NewFromInt(12)}},
		}, nil)

		res, err := d.service.AddToWishlist(ctx, userSession, wishlist.ItemRequest{ProductID: "p1"})

		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "w-1", res.Items[0].Key)
		assert.Equal(t, "authenticated", res.Mode)
	})

	t.Run("authenticated_conflict_is_noop", func(t *testing.T) {
		d := setupServiceTest(t)

		d.api.EXPECT().AddWishlistItem(ctx, "tok", gomock.Any()).Return(apiclient.WishlistItem{}, &apiclient.APIError{Status: http.StatusConflict})
		d.api.EXPECT().GetWishlist(ctx, "tok").Return(nil, nil)

		_, err := d.service.AddToWishlist(ctx, userSession, wishlist.ItemRequest{ProductID: "p1", SpecificationID: "s1"})

		assert.NoError(t, err)
	})
}

func TestWishlistService_AuthenticatedToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("removes_existing_entry", func(t *testing.T) {
		d := setupServiceTest(t)

		d.resolver.EXPECT().Resolve(ctx, "p1", specification.Selection{Size: "M"}).Return("s1", nil)
		gomock.InOrder(
			d.api.EXPECT().GetWishlist(ctx, "tok").Return([]apiclient.WishlistItem{{ID: "w-1", ProductID: "p1", SpecificationID: "s1"}}, nil),
			d.api.EXPECT().RemoveWishlistItem(ctx, "tok", "w-1").Return(nil),
			d.api.EXPECT().GetWishlist(ctx, "tok").Return(nil, nil),
		)

		res, err := d.service.ToggleWishlist(ctx, userSession, wishlist.ItemRequest{ProductID: "p1", Size: "M"})

		require.NoError(t, err)
		assert.False(t, res.Added)
	})

	t.Run("adds_missing_entry", func(t *testing.T) {
		d := setupServiceTest(t)

		d.resolver.EXPECT().Resolve(ctx, "p1", specification.Selection{}).Return("s2", nil)
		gomock.InOrder(
			d.api.EXPECT().GetWishlist(ctx, "tok").Return([]apiclient.WishlistItem{{ID: "w-1", ProductID: "p1", SpecificationID: "s1"}}, nil),
			d.api.EXPECT().AddWishlistItem(ctx, "tok", apiclient.AddWishlistItemRequest{ProductID: "p1", SpecificationID: "s2"}).Return(apiclient.WishlistItem{ID: "w-2"}, nil),
			d.api.EXPECT().GetWishlist(ctx, "tok").Return(nil, nil),
		)

		res, err := d.service.ToggleWishlist(ctx, userSession, wishlist.ItemRequest{ProductID: "p1"})

		require.NoError(t, err)
		assert.True(t, res.Added)
	})

	t.Run("no_specification", func(t *testing.T) {
		d := setupServiceTest(t)

		d.resolver.EXPECT().Resolve(ctx, "p1", gomock.Any()).Return("", specification.ErrNoSpecification)

		_, err := d.service.ToggleWishlist(ctx, userSession, wishlist.ItemRequest{ProductID: "p1"})

		assert.ErrorIs(t, err, specification.ErrNoSpecification)
	})
}

func TestWishlistService_RemoveAndCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("guest_remove_unknown", func(t *testing.T) {
		d := setupServiceTest(t)
		memoryGuest{}.wire(d.guest)

		_, err := d.service.RemoveFromWishlist(ctx, guestSession, "p9")

		assert.ErrorIs(t, err, wishlist.ErrItemNotFound)
	})

	t.Run("check_distinguishes_specification", func(t *testing.T) {
		d := setupServiceTest(t)

		d.api.EXPECT().GetWishlist(ctx, "tok").Return([]apiclient.WishlistItem{{ID: "w-1", ProductID: "p1", SpecificationID: "s1"}}, nil)

		res, err := d.service.Check(ctx, userSession, "p1", "s2")

		require.NoError(t, err)
		assert.False(t, res.InWishlist)
		assert.True(t, res.ProductWishlisted)
	})

	t.Run("is_in_wishlist_exact", func(t *testing.T) {
		d := setupServiceTest(t)

		d.api.EXPECT().GetWishlist(ctx, "tok").Return([]apiclient.WishlistItem{{ID: "w-1", ProductID: "p1", SpecificationID: "s1"}}, nil)

		ok, err := d.service.IsInWishlist(ctx, userSession, "p1", "s1")

		require.NoError(t, err)
		assert.True(t, ok)
	})
}

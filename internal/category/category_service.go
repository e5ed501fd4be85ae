package category

import (
	"context"
	"strings"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/session"
)

//go:generate mockgen -source=category_service.go -destination=../mock/category/category_service_mock.go -package=mock
type API interface {
	ListCategories(ctx context.Context) ([]apiclient.Category, error)
	GetCategory(ctx context.Context, id string) (apiclient.Category, error)
	CreateCategory(ctx context.Context, token string, in apiclient.CategoryInput) (apiclient.Category, error)
	UpdateCategory(ctx context.Context, token, id string, in apiclient.CategoryInput) (apiclient.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error
}

type Service interface {
	List(ctx context.Context) ([]apiclient.Category, error)
	GetByID(ctx context.Context, id string) (apiclient.Category, error)
	Create(ctx context.Context, sess session.Session, req CategoryRequest) (apiclient.Category, error)
	Update(ctx context.Context, sess session.Session, id string, req CategoryRequest) (apiclient.Category, error)
	Delete(ctx context.Context, sess session.Session, id string) error
}

type service struct {
	api API
}

func NewService(api API) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context) ([]apiclient.Category, error) {
	cats, err := s.api.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []apiclient.Category{}
	}
	return cats, nil
}

func (s *service) GetByID(ctx context.Context, id string) (apiclient.Category, error) {
	cat, err := s.api.GetCategory(ctx, id)
	return cat, notFound(err)
}

func (s *service) Create(ctx context.Context, sess session.Session, req CategoryRequest) (apiclient.Category, error) {
	in, err := toInput(req)
	if err != nil {
		return apiclient.Category{}, err
	}
	return s.api.CreateCategory(ctx, sess.Token, in)
}

func (s *service) Update(ctx context.Context, sess session.Session, id string, req CategoryRequest) (apiclient.Category, error) {
	in, err := toInput(req)
	if err != nil {
		return apiclient.Category{}, err
	}
	cat, err := s.api.UpdateCategory(ctx, sess.Token, id, in)
	return cat, notFound(err)
}

func (s *service) Delete(ctx context.Context, sess session.Session, id string) error {
	return notFound(s.api.DeleteCategory(ctx, sess.Token, id))
}

func toInput(req CategoryRequest) (apiclient.CategoryInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return apiclient.CategoryInput{}, ErrCategoryNameRequired
	}
	return apiclient.CategoryInput{Name: name, Description: strings.TrimSpace(req.Description)}, nil
}

func notFound(err error) error {
	if apiclient.IsNotFound(err) {
		return ErrCategoryNotFound
	}
	return err
}

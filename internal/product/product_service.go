package product

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/cloudinary"
	"go-clothing-store/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=product_service.go -destination=../mock/product/product_service_mock.go -package=mock
type API interface {
	ListProducts(ctx context.Context, p apiclient.ListParams) (apiclient.ProductPage, error)
	SearchProducts(ctx context.Context, term string, p apiclient.ListParams) (apiclient.ProductPage, error)
	GetProduct(ctx context.Context, id string) (apiclient.Product, error)
	CreateProduct(ctx context.Context, token string, in apiclient.ProductInput) (apiclient.Product, error)
	UpdateProduct(ctx context.Context, token, id string, in apiclient.ProductInput) (apiclient.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error
	ListProductSpecifications(ctx context.Context, productID string) ([]apiclient.Specification, error)
	CreateSpecification(ctx context.Context, token string, in apiclient.SpecificationInput) (apiclient.Specification, error)
	UpdateSpecification(ctx context.Context, token, id string, in apiclient.SpecificationInput) (apiclient.Specification, error)
	DeleteSpecification(ctx context.Context, token, id string) error
}

type Service interface {
	List(ctx context.Context, p apiclient.ListParams) (apiclient.ProductPage, error)
	GetByID(ctx context.Context, id string) (ProductDetailResponse, error)
	Create(ctx context.Context, sess session.Session, req CreateProductRequest, file multipart.File, filename string) (apiclient.Product, error)
	Update(ctx context.Context, sess session.Session, id string, req UpdateProductRequest, file multipart.File, filename string) (apiclient.Product, error)
	Delete(ctx context.Context, sess session.Session, id string) error

	ListSpecifications(ctx context.Context, productID string) ([]apiclient.Specification, error)
	CreateSpecification(ctx context.Context, sess session.Session, productID string, req SpecificationRequest) (apiclient.Specification, error)
	UpdateSpecification(ctx context.Context, sess session.Session, productID, id string, req SpecificationRequest) (apiclient.Specification, error)
	DeleteSpecification(ctx context.Context, sess session.Session, id string) error
}

type service struct {
	api      API
	images   cloudinary.Service
	folder   string
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService wires the catalog. images may be nil when no image host is
// configured; uploads then fail with ErrImageUpload.
func NewService(api API, images cloudinary.Service, folder string, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		api:      api,
		images:   images,
		folder:   folder,
		validate: validator.New(),
		logger:   logger.Named("product.service"),
	}
}

func (s *service) List(ctx context.Context, p apiclient.ListParams) (apiclient.ProductPage, error) {
	if term := strings.TrimSpace(p.Search); term != "" {
		p.Search = ""
		return s.api.SearchProducts(ctx, term, p)
	}
	return s.api.ListProducts(ctx, p)
}

func (s *service) GetByID(ctx context.Context, id string) (ProductDetailResponse, error) {
	p, err := s.api.GetProduct(ctx, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return ProductDetailResponse{}, ErrProductNotFound
		}
		return ProductDetailResponse{}, err
	}

	specs := p.Specifications
	if len(specs) == 0 {
		specs, err = s.api.ListProductSpecifications(ctx, id)
		if err != nil {
			return ProductDetailResponse{}, err
		}
	}

	return buildDetail(p, specs), nil
}

func (s *service) Create(ctx context.Context, sess session.Session, req CreateProductRequest, file multipart.File, filename string) (apiclient.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return apiclient.Product{}, ErrInvalidProduct
	}
	if req.Price.IsNegative() {
		return apiclient.Product{}, ErrInvalidPrice
	}

	in := apiclient.ProductInput{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	}

	if file != nil {
		url, err := s.upload(ctx, file, filename)
		if err != nil {
			return apiclient.Product{}, err
		}
		in.ImageURL = url
	}

	p, err := s.api.CreateProduct(ctx, sess.Token, in)
	if err != nil {
		s.discard(ctx, in.ImageURL)
		return apiclient.Product{}, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, sess session.Session, id string, req UpdateProductRequest, file multipart.File, filename string) (apiclient.Product, error) {
	current, err := s.api.GetProduct(ctx, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return apiclient.Product{}, ErrProductNotFound
		}
		return apiclient.Product{}, err
	}

	in := apiclient.ProductInput{
		Name:        current.Name,
		Description: current.Description,
		Price:       current.Price,
		Stock:       current.Stock,
		CategoryID:  current.CategoryID,
		ImageURL:    current.ImageURL,
	}
	if req.Name != nil {
		in.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return apiclient.Product{}, ErrInvalidPrice
		}
		in.Price = *req.Price
	}
	if req.Stock != nil {
		in.Stock = *req.Stock
	}
	if req.CategoryID != nil {
		in.CategoryID = *req.CategoryID
	}
	if in.Name == "" || in.CategoryID == "" {
		return apiclient.Product{}, ErrInvalidProduct
	}

	if file != nil {
		url, err := s.upload(ctx, file, filename)
		if err != nil {
			return apiclient.Product{}, err
		}
		in.ImageURL = url
	}

	p, err := s.api.UpdateProduct(ctx, sess.Token, id, in)
	if err != nil {
		if in.ImageURL != current.ImageURL {
			s.discard(ctx, in.ImageURL)
		}
		return apiclient.Product{}, err
	}

	if in.ImageURL != current.ImageURL {
		s.discard(ctx, current.ImageURL)
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, sess session.Session, id string) error {
	current, err := s.api.GetProduct(ctx, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.api.DeleteProduct(ctx, sess.Token, id); err != nil {
		return err
	}
	s.discard(ctx, current.ImageURL)
	return nil
}

func (s *service) ListSpecifications(ctx context.Context, productID string) ([]apiclient.Specification, error) {
	specs, err := s.api.ListProductSpecifications(ctx, productID)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return specs, nil
}

func (s *service) CreateSpecification(ctx context.Context, sess session.Session, productID string, req SpecificationRequest) (apiclient.Specification, error) {
	return s.api.CreateSpecification(ctx, sess.Token, specInput(productID, req))
}

func (s *service) UpdateSpecification(ctx context.Context, sess session.Session, productID, id string, req SpecificationRequest) (apiclient.Specification, error) {
	spec, err := s.api.UpdateSpecification(ctx, sess.Token, id, specInput(productID, req))
	if apiclient.IsNotFound(err) {
		return apiclient.Specification{}, ErrSpecificationNotFound
	}
	return spec, err
}

func (s *service) DeleteSpecification(ctx context.Context, sess session.Session, id string) error {
	err := s.api.DeleteSpecification(ctx, sess.Token, id)
	if apiclient.IsNotFound(err) {
		return ErrSpecificationNotFound
	}
	return err
}

func (s *service) upload(ctx context.Context, file multipart.File, filename string) (string, error) {
	if s.images == nil {
		return "", ErrImageUpload
	}

	url, err := s.images.UploadImage(ctx, file, publicName(filename))
	if err != nil {
		s.logger.Error("image upload failed", zap.String("filename", filename), zap.Error(err))
		return "", ErrImageUpload
	}
	return url, nil
}

// discard removes an image that no product points to anymore. Failures only
// leave an orphan behind, so they are logged.
func (s *service) discard(ctx context.Context, url string) {
	if s.images == nil || url == "" {
		return
	}
	publicID := cloudinary.ExtractPublicID(url, s.folder)
	if publicID == "" {
		return
	}
	if err := s.images.DeleteImage(ctx, publicID); err != nil {
		s.logger.Warn("failed to delete product image", zap.String("public_id", publicID), zap.Error(err))
	}
}

func specInput(productID string, req SpecificationRequest) apiclient.SpecificationInput {
	return apiclient.SpecificationInput{
		ProductID:  productID,
		Size:       strings.TrimSpace(req.Size),
		Color:      strings.TrimSpace(req.Color),
		PriceDelta: req.PriceDelta,
		Stock:      req.Stock,
	}
}

func publicName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ToLower(strings.Join(strings.Fields(base), "-"))
	if base == "" || base == "." {
		base = "product"
	}
	return fmt.Sprintf("%s-%d-%s", base, time.Now().Unix(), uuid.NewString()[:8])
}

func buildDetail(p apiclient.Product, specs []apiclient.Specification) ProductDetailResponse {
	if specs == nil {
		specs = []apiclient.Specification{}
	}

	res := ProductDetailResponse{
		Product:        p,
		Specifications: specs,
		Sizes:          []string{},
		Colors:         []string{},
		InStock:        p.Stock > 0,
	}

	seenSize := map[string]bool{}
	seenColor := map[string]bool{}
	for _, sp := range specs {
		if sp.Stock > 0 {
			res.InStock = true
		}
		if k := strings.ToLower(sp.Size); sp.Size != "" && !seenSize[k] {
			seenSize[k] = true
			res.Sizes = append(res.Sizes, sp.Size)
		}
		if k := strings.ToLower(sp.Color); sp.Color != "" && !seenColor[k] {
			seenColor[k] = true
			res.Colors = append(res.Colors, sp.Color)
		}
	}
	return res
}

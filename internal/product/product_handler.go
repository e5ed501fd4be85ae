package product

import (
	"mime/multipart"
	"net/http"
	"strings"

	"go-clothing-store/internal/middleware"
	"go-clothing-store/internal/pkg/httpx"
	"go-clothing-store/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const maxUploadSize = 10 << 20

type Handler struct {
	productService Service
}

func NewHandler(productService Service) *Handler {
	return &Handler{productService: productService}
}

func (h *Handler) GetPublicList(c *gin.Context) {
	page, err := h.productService.List(c.Request.Context(), httpx.ListParams(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page.Data, httpx.Pagination(page.Meta))
}

func (h *Handler) GetByID(c *gin.Context) {
	res, err := h.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ListSpecifications(c *gin.Context) {
	specs, err := h.productService.ListSpecifications(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, specs, nil)
}

func (h *Handler) Create(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadSize); err != nil {
		httpx.BindError(c, err)
		return
	}

	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		httpx.BindError(c, err)
		return
	}

	price, err := parsePrice(form.Price)
	if err != nil || price == nil {
		httpx.RespondError(c, ErrInvalidPrice)
		return
	}

	req := CreateProductRequest{
		Name:        form.Name,
		Description: form.Description,
		Price:       *price,
		CategoryID:  form.CategoryID,
	}
	if form.Stock != nil {
		req.Stock = *form.Stock
	}

	file, filename, closeFile, err := formImage(c)
	if err != nil {
		httpx.BindError(c, err)
		return
	}
	defer closeFile()

	result, err := h.productService.Create(c.Request.Context(), middleware.CurrentSession(c), req, file, filename)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result, nil)
}

func (h *Handler) Update(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadSize); err != nil {
		httpx.BindError(c, err)
		return
	}

	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		httpx.BindError(c, err)
		return
	}

	price, err := parsePrice(form.Price)
	if err != nil {
		httpx.RespondError(c, ErrInvalidPrice)
		return
	}

	req := UpdateProductRequest{
		Price: price,
		Stock: form.Stock,
	}
	if _, ok := c.GetPostForm("name"); ok {
		req.Name = &form.Name
	}
	if _, ok := c.GetPostForm("description"); ok {
		req.Description = &form.Description
	}
	if form.CategoryID != "" {
		req.CategoryID = &form.CategoryID
	}

	file, filename, closeFile, err := formImage(c)
	if err != nil {
		httpx.BindError(c, err)
		return
	}
	defer closeFile()

	result, err := h.productService.Update(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), req, file, filename)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted"}, nil)
}

func (h *Handler) CreateSpecification(c *gin.Context) {
	var req SpecificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	spec, err := h.productService.CreateSpecification(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, spec, nil)
}

func (h *Handler) UpdateSpecification(c *gin.Context) {
	var req SpecificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	spec, err := h.productService.UpdateSpecification(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), c.Param("specId"), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, spec, nil)
}

func (h *Handler) DeleteSpecification(c *gin.Context) {
	if err := h.productService.DeleteSpecification(c.Request.Context(), middleware.CurrentSession(c), c.Param("specId")); err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Specification deleted"}, nil)
}

// parsePrice returns nil for a blank value.
func parsePrice(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	if d.IsNegative() {
		return nil, ErrInvalidPrice
	}
	return &d, nil
}

// formImage opens the optional "image" part. The returned closer is always
// safe to call.
func formImage(c *gin.Context) (multipart.File, string, func(), error) {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return nil, "", func() {}, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", func() {}, err
	}
	return f, fileHeader.Filename, func() { _ = f.Close() }, nil
}

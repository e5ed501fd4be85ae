package httpx

import (
	"net/http"
	"strconv"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/middleware"
	"go-clothing-store/internal/pkg/apperror"
	"go-clothing-store/internal/pkg/response"
	"go-clothing-store/internal/session"

	"github.com/gin-gonic/gin"
)

// RespondError writes err in the response envelope. An expired session also
// loses its token cookie so the browser lands on sign-in as anonymous.
func RespondError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Code == apperror.CodeSessionExpired {
		session.ClearTokenCookie(c.Writer, c.GetBool(middleware.CookieSecureKey))
		middleware.SetSession(c, middleware.CurrentSession(c).Anonymized())
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func BindError(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", err.Error())
}

// ListParams reads the common page/limit/search/sort query.
func ListParams(c *gin.Context) apiclient.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}
	return apiclient.ListParams{
		Page:       page,
		PerPage:    limit,
		Search:     c.Query("search"),
		CategoryID: c.Query("category_id"),
		Sort:       c.Query("sort"),
	}
}

func Pagination(meta apiclient.PageMeta) *response.Pagination {
	return response.NewPagination(meta.CurrentPage, meta.PerPage, meta.Total)
}

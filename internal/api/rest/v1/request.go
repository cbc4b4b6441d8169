package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type validatable interface {
	Validate() error
}

// bindJSON decodes and validates the request body, answering 400 itself on failure
func bindJSON(ctx *gin.Context, req validatable) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		respondBadRequest(ctx, "invalid request body: "+err.Error())
		return false
	}
	if err := req.Validate(); err != nil {
		respondError(ctx, err)
		return false
	}
	return true
}

// bindOptionalJSON is bindJSON for endpoints whose body may be omitted
func bindOptionalJSON(ctx *gin.Context, req validatable) bool {
	if ctx.Request.ContentLength == 0 {
		if err := req.Validate(); err != nil {
			respondError(ctx, err)
			return false
		}
		return true
	}
	return bindJSON(ctx, req)
}

// respondStatus writes a bodyless response
func respondStatus(ctx *gin.Context, status int) {
	ctx.Status(status)
	ctx.Writer.WriteHeaderNow()
}

func respondNoContent(ctx *gin.Context) {
	respondStatus(ctx, http.StatusNoContent)
}

// pageParams reads limit and offset, clamping limit to maxPageSize
func pageParams(ctx *gin.Context) (limit, offset int, ok bool) {
	limit, ok = queryInt(ctx, "limit", defaultPageSize)
	if !ok {
		return 0, 0, false
	}
	offset, ok = queryInt(ctx, "offset", 0)
	if !ok {
		return 0, 0, false
	}
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset, true
}

func queryInt(ctx *gin.Context, name string, fallback int) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondBadRequest(ctx, "invalid "+name+": must be an integer")
		return 0, false
	}
	return v, true
}

// queryTime parses an optional RFC 3339 timestamp
func queryTime(ctx *gin.Context, name string) (*time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		respondBadRequest(ctx, "invalid "+name+": must be an RFC 3339 timestamp")
		return nil, false
	}
	return &t, true
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-roster-service/internal/repository"
	"github.com/maxviazov/cricket-roster-service/internal/service"
)

func pathID(c *gin.Context, key string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.NewInvalidInputError([]service.FieldError{{Field: key, Message: "must be a positive integer"}})
	}
	return id, nil
}

// pageQuery tolerates junk in limit/offset; Normalize fills the defaults.
func pageQuery(c *gin.Context) repository.Page {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	return repository.Page{Limit: limit, Offset: offset}
}

func badBody(field string) error {
	return service.NewInvalidInputError([]service.FieldError{{Field: field, Message: "malformed request body"}})
}

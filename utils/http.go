package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lkwun/formbuilder-go/types"
)

var ErrNoClaims = errors.New("no claims in context")

func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	return uint(idUint64), err
}

func GetUserIDFromContext(c *gin.Context) (uint, error) {
	value, exists := c.Get("claims")
	if !exists {
		return 0, ErrNoClaims
	}
	claims, ok := value.(*types.Claims)
	if !ok {
		return 0, ErrNoClaims
	}
	return claims.UserID, nil
}

package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RequiredParamError names the request parameter that was missing or not
// numeric. Its message is the response body text, e.g. "projectId is
// required".
type RequiredParamError struct {
	Param string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("%s is required", e.Param)
}

func ParseIDParam(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, &RequiredParamError{Param: param}
	}
	return uint(id), nil
}

// ParseQueryUintParam reads a numeric query parameter. Absent and
// malformed values both map to RequiredParamError so handlers echo a
// single message for either case.
func ParseQueryUintParam(c *gin.Context, param string) (uint, error) {
	val, err := strconv.ParseUint(c.Query(param), 10, 32)
	if err != nil {
		return 0, &RequiredParamError{Param: param}
	}
	return uint(val), nil
}

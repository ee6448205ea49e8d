package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-sathi/campus-sathi/app/core"
	"github.com/campus-sathi/campus-sathi/app/response"
	"github.com/campus-sathi/campus-sathi/pkg/errors"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}

// fail counts the error per api before handing it to the response envelope.
func (s *HttpSrv) fail(c *gin.Context, api string, err error) {
	s.Core.Metrics().ApiErrorInc(c.Request.Method, api, errors.Code(err))
	response.APIError(c, err)
}

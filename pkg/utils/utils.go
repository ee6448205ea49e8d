package utils

import (
	crand "crypto/rand"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/holdno/snowFlakeByGo"

	"github.com/campus-sathi/campus-sathi/pkg/errors"
	"github.com/campus-sathi/campus-sathi/pkg/i18n"
)

var idWorker *snowFlakeByGo.Worker

func SetupIDWorker(clusterID int64) {
	idWorker, _ = snowFlakeByGo.NewWorker(clusterID)
}

func GenUniqID() int64 {
	return idWorker.GetId()
}

func GenUniqIDStr() string {
	return strconv.FormatInt(GenUniqID(), 10)
}

// GenSessionToken returns an opaque uuid-format session token.
func GenSessionToken() string {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand is expected to always work; fall back to math/rand
		// rather than failing session creation.
		for i := range b {
			b[i] = byte(rand.Intn(256))
		}
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

func Random(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.Intn(max-min+1)
}

func BindArgsWithGin(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindWith(req, binding.Default(c.Request.Method, c.ContentType())); err != nil {
		return errors.New("utils.BindArgsWithGin", i18n.ERROR_INVALIDARGUMENT, err).Code(400)
	}
	return nil
}

package middleware

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/olympics-access-go/pkg/response"
)

// SingleFlight rejects a request while an earlier one is still in flight.
// The remote isochrone compute is slow enough that queueing repeat clicks
// would only pile up work; the second trigger gets a 409 instead.
func SingleFlight() gin.HandlerFunc {
	var inFlight int32
	return func(c *gin.Context) {
		if !atomic.CompareAndSwapInt32(&inFlight, 0, 1) {
			response.Error(c, http.StatusConflict, "A query is already in progress, please wait for it to finish", nil)
			c.Abort()
			return
		}
		defer atomic.StoreInt32(&inFlight, 0)
		c.Next()
	}
}

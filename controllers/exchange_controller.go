package controllers

import (
	"net/http"
	"sync"

	"go-postgres-carbooks/fx"

	"github.com/gin-gonic/gin"
)

var (
	fxClient *fx.Client
	fxOnce   sync.Once
)

// GetExchangeRate seeds the rate fields on the cost and sale forms. The value
// is advisory; every form keeps the rate editable. The client is built on
// first use so EXCHANGE_RATE_URL from .env is honoured, with sync.Once
// guarding concurrent requests.
func GetExchangeRate(c *gin.Context) {
	fxOnce.Do(func() { fxClient = fx.NewClient() })
	rate, fallback := fxClient.JPYToLKR(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"pair":     "JPY/LKR",
		"rate":     rate,
		"fallback": fallback,
	})
}

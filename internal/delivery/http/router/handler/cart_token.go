package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXCartToken carries the anonymous shopper token. The same token keys
// the cart, the checkout session and the favorites list.
const HeaderXCartToken = "X-Cart-Token"

// cartToken reads the shopper token from the request header, minting a fresh
// one when the header is absent or malformed. The effective token is always
// echoed back so the client can persist it.
func cartToken(c echo.Context) uuid.UUID {
	token, err := uuid.Parse(c.Request().Header.Get(HeaderXCartToken))
	if err != nil {
		token = uuid.New()
	}

	c.Response().Header().Set(HeaderXCartToken, token.String())

	return token
}

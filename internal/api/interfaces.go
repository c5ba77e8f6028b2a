package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
)

type JWTServiceI interface {
	GenerateToken(userID, displayName string) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims are minted by the chat bot for its users. UserID is the
// platform user id, not a database key.
type JWTClaims struct {
	jwt.RegisteredClaims
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

type HubI interface {
	// Serves the connection until the client goes away
	ServeWS(conn *websocket.Conn, userID string)
}

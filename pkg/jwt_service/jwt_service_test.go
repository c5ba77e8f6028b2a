package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/sketchstreak/internal/api"
	jwtservice "github.com/limbo/sketchstreak/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	svc := jwtservice.New("test_secret", time.Minute)
	token, err := svc.GenerateToken("tg_100500", "Anna")
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "tg_100500", claims.UserID)
	assert.Equal(t, "Anna", claims.DisplayName)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 2*time.Second)
}

func TestGenerateEmptyUser(t *testing.T) {
	_, err := jwtservice.New("test_secret", 0).GenerateToken("", "Anna")
	assert.Error(t, err)
}

func TestParseRejects(t *testing.T) {
	svc := jwtservice.New("test_secret", time.Minute)

	foreign, err := jwtservice.New("other_secret", time.Minute).GenerateToken("tg_100500", "")
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &api.JWTClaims{
		UserID: "tg_100500",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("test_secret"))
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &api.JWTClaims{
		UserID: "tg_100500",
	}).SignedString([]byte("test_secret"))
	require.NoError(t, err)

	testCases := []struct {
		Desc  string
		Token string
	}{
		{Desc: "garbage", Token: "not.a.token"},
		{Desc: "foreign secret", Token: foreign},
		{Desc: "expired", Token: expired},
		{Desc: "wrong signing method", Token: wrongAlg},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			claims, err := svc.ParseToken(tc.Token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

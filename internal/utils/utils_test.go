// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-keeper/models"
)

func TestPublisherContext(t *testing.T) {
	_, ok := GetPublisherFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetPublisherFromContext(WithPublisher(context.Background(), ""))
	assert.False(t, ok)

	_, ok = GetPublisherFromContext(context.WithValue(context.Background(), PublisherCtxKey, 42))
	assert.False(t, ok)

	publisher, ok := GetPublisherFromContext(WithPublisher(context.Background(), "ci"))
	assert.True(t, ok)
	assert.Equal(t, "ci", publisher)
	assert.Equal(t, "publisher", PublisherCtxKey.String())
}

func TestChecksum(t *testing.T) {
	a := models.DefaultConfiguration()
	a.Head.BodyAttrs = map[string]string{"class": "x", "data-a": "y"}

	b := a.Clone()

	sumA, err := Checksum(a)
	require.NoError(t, err)
	sumB, err := Checksum(b)
	require.NoError(t, err)

	assert.Len(t, sumA, 64)
	assert.Equal(t, sumA, sumB)

	b.Modules = []string{"vueuse"}
	sumC, err := Checksum(b)
	require.NoError(t, err)
	assert.NotEqual(t, sumA, sumC)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, rec.Body.Len(), n)

	rec = httptest.NewRecorder()
	_, err = WriteJSON(rec, make(chan int), http.StatusOK)
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteHTML(t *testing.T) {
	rec := httptest.NewRecorder()
	_, err := WriteHTML(rec, "<p>hi</p>", http.StatusOK)
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<p>hi</p>", rec.Body.String())
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080", BaseURL("localhost:8080"))
	assert.Equal(t, "https://site.example", BaseURL("https://site.example/"))
	assert.Equal(t, "", BaseURL("  "))

	client := NewHTTPClient("localhost:9000", time.Second)
	assert.Equal(t, "http://localhost:9000", client.BaseURL)
}

func TestGenerateAndValidateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("site-keeper", "ci", time.Hour, "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, "ci", token.Subject)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "site-keeper")
	require.NoError(t, err)
	assert.Equal(t, "ci", parsed.Publisher)
	assert.Equal(t, "site-keeper", parsed.Issuer)

	_, err = ValidateAndParseJWTToken(token.SignedString, "other-secret", "site-keeper")
	assert.Error(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "secret", "someone-else")
	assert.Error(t, err)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	for _, tt := range []struct {
		issuer, publisher string
		duration          time.Duration
		key               string
	}{
		{"", "ci", time.Hour, "key"},
		{"iss", "", time.Hour, "key"},
		{"iss", "ci", 0, "key"},
		{"iss", "ci", time.Hour, ""},
	} {
		_, err := GenerateJWTToken(tt.issuer, tt.publisher, tt.duration, tt.key)
		assert.ErrorIs(t, err, ErrInvalidTokenParams)
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "ci",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	raw, err := expired.SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = ValidateAndParseJWTToken(raw, "k", "iss")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	raw, err = noSubject.SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = ValidateAndParseJWTToken(raw, "k", "iss")
	assert.ErrorContains(t, err, "empty subject")

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "ci",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	raw, err = hs512.SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = ValidateAndParseJWTToken(raw, "k", "iss")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ParseBearerToken("  bearer xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, h := range []string{"", "Bearer", "Bearer ", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(h)
		assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader, h)
	}
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()

	assert.NotEqual(t, a, b)
	assert.NoError(t, ValidateID(a))
	assert.Less(t, a, b)
	assert.Error(t, ValidateID("not-a-uuid"))
}

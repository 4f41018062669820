// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-retail-api/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestClaimsCtxKey(t *testing.T) {
	if ClaimsCtxKey.String() != "claims" {
		t.Errorf("expected 'claims', got '%s'", ClaimsCtxKey.String())
	}
}

func TestGetClaimsFromContext_Success(t *testing.T) {
	claims := &models.Claims{Permissions: []string{"read:orders"}}
	ctx := WithClaims(context.Background(), claims)

	got, ok := GetClaimsFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != claims {
		t.Errorf("expected stored claims pointer, got %v", got)
	}
}

func TestGetClaimsFromContext_Missing(t *testing.T) {
	_, ok := GetClaimsFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetClaimsFromContext_Nil(t *testing.T) {
	ctx := WithClaims(context.Background(), nil)

	if _, ok := GetClaimsFromContext(ctx); ok {
		t.Error("expected ok=false for nil claims")
	}
}

func TestGetClaimsFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClaimsCtxKey, "not claims")

	if _, ok := GetClaimsFromContext(ctx); ok {
		t.Error("expected ok=false for wrong value type")
	}
}

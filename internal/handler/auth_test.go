package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthUsecase struct {
	lastEmail string
}

func (f *fakeAuthUsecase) IssueToken(email string) (string, error) {
	f.lastEmail = email
	return "signed-token", nil
}

func testLogger() *zerolog.Logger {
	logger := zerolog.New(os.Stderr)
	return &logger
}

func TestIssueToken(t *testing.T) {
	uc := &fakeAuthUsecase{}
	h := NewAuthHandler(uc, NewPayloadValidator(), testLogger())

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@b.com"}`))
	rec := httptest.NewRecorder()

	h.IssueToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@b.com", uc.lastEmail)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestIssueTokenRejectsBadPayload(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, NewPayloadValidator(), testLogger())

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{}`},
		{"not an email", `{"email":"nope"}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.IssueToken(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

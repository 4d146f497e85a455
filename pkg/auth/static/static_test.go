package static_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/wingman-speak/pkg/auth"
	"github.com/adrianliechti/wingman-speak/pkg/auth/static"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	p, err := static.New("secret")
	require.NoError(t, err)

	tests := []struct {
		header string
		valid  bool
	}{
		{"", false},
		{"Basic secret", false},
		{"Bearer wrong", false},
		{"Bearer SECRET", false},
		{"Bearer secret", true},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("POST", "/mcp", nil)

		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}

		ctx, err := p.Authenticate(context.Background(), r)

		if !tt.valid {
			require.Error(t, err, tt.header)
			continue
		}

		require.NoError(t, err)
		require.Equal(t, "static", ctx.Value(auth.UserContextKey))
	}
}

func TestAuthenticateWithoutToken(t *testing.T) {
	p, err := static.New("")
	require.NoError(t, err)

	r := httptest.NewRequest("POST", "/mcp", nil)

	_, err = p.Authenticate(context.Background(), r)
	require.NoError(t, err)
}

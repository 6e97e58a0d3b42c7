package controller

import (
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/chandemahtab/blog-api/internal/web/blog/model"
)

func TestMaskLoginError(t *testing.T) {
	t.Parallel()

	require.NoError(t, maskLoginError(nil))

	err := maskLoginError(model.ErrInvalidCredentials)
	require.True(t, errors.Is(err, model.ErrInvalidCredentials))

	err = maskLoginError(errors.New("pq: connection refused to 10.0.0.5"))
	require.EqualError(t, err, loginFailedMessage)
	require.NotContains(t, err.Error(), "10.0.0.5")
}

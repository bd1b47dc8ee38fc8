package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevkin/feedboard/internal/config"
	"github.com/mlevkin/feedboard/internal/logger"
)

func TestAppInfoService_GetAppVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.2.3"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}

func TestAppInfoService_EmptyVersion(t *testing.T) {
	_, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

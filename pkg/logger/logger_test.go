package logger_test

import (
	"context"
	"recond/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
	}{
		{
			name:        "development environment",
			environment: logger.DevelopmentEnvironment,
		},
		{
			name:        "production environment",
			environment: logger.ProductionEnvironment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment)
			})

			l := logger.Get(context.Background())
			require.NotNil(t, l)
		})
	}
}

func TestGet(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	l := logger.Get(ctx)
	require.NotNil(t, l, "should return default logger when context has no logger")

	customLogger, _ := zap.NewDevelopment()
	ctxWithLogger := logger.WithLogger(ctx, customLogger)
	l = logger.Get(ctxWithLogger)
	require.Equal(t, customLogger, l, "should return logger from context")
}

func TestWithFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := logger.WithFields(context.Background(), zap.String("target", "example.com"))
	l := logger.Get(ctx)
	require.NotNil(t, l)
	require.NotEqual(t, logger.Get(context.Background()), l, "fields should produce a derived logger")
}

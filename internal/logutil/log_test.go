package logutil

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithLogger_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := WithLogger(context.Background(), logger)

	carried := FromContext(ctx)
	carried.Info().Msg("carried")
	if !strings.Contains(buf.String(), "carried") {
		t.Errorf("expected message through carried logger, got %q", buf.String())
	}
}

func TestFromContext_BareContext(t *testing.T) {
	t.Parallel()

	// Must hand back a usable logger, never panic.
	l := FromContext(context.Background())
	l.Debug().Msg("fallback")
}

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/service"
	"github.com/MKhiriev/go-bill-desk/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUI struct {
	err   error
	calls int
}

func (s *stubUI) Run(context.Context) error {
	s.calls++
	return s.err
}

func TestNewApp(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, logger.Nop())
	require.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, logger.Nop())
	require.Error(t, err)

	app, err := NewApp(&service.ClientServices{}, &stubUI{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_Run(t *testing.T) {
	boom := errors.New("terminal gone")

	tests := []struct {
		name    string
		uiErr   error
		cancel  bool
		wantErr error
	}{
		{name: "clean exit", uiErr: nil},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "interrupted", uiErr: boom, cancel: true},
		{name: "ui failure", uiErr: boom, wantErr: boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &stubUI{err: tt.uiErr}
			app, err := NewApp(&service.ClientServices{}, ui, logger.Nop())
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			err = app.Run(ctx)
			assert.Equal(t, 1, ui.calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventcheckin/internal/domain"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name           string
		current        domain.EventStatus
		target         domain.EventStatus
		hasCoordinates bool
		wantErr        error
		wantMsg        string
	}{
		{
			name:    "finalized is terminal",
			current: domain.StatusFinalizado,
			target:  domain.StatusEmAndamento,
			wantErr: domain.ErrConflict,
			wantMsg: "Não é possível alterar um evento que já foi finalizado ou cancelado",
		},
		{
			name:    "cancelled is terminal",
			current: domain.StatusCancelado,
			target:  domain.StatusPendente,
			wantErr: domain.ErrConflict,
			wantMsg: "Não é possível alterar um evento que já foi finalizado ou cancelado",
		},
		{
			name:    "running cannot go back to pending",
			current: domain.StatusEmAndamento,
			target:  domain.StatusPendente,
			wantErr: domain.ErrConflict,
			wantMsg: "Não é possível voltar um evento em andamento para pendente",
		},
		{
			name:    "running to running rejected",
			current: domain.StatusEmAndamento,
			target:  domain.StatusEmAndamento,
			wantErr: domain.ErrConflict,
			wantMsg: "O evento já está em andamento",
		},
		{
			name:    "start requires coordinates",
			current: domain.StatusPendente,
			target:  domain.StatusEmAndamento,
			wantErr: domain.ErrInvalidInput,
			wantMsg: "Informe a latitude e longitude para iniciar o evento",
		},
		{
			name:           "start with coordinates",
			current:        domain.StatusPendente,
			target:         domain.StatusEmAndamento,
			hasCoordinates: true,
		},
		{
			name:    "resume from paused without coordinates",
			current: domain.StatusPausado,
			target:  domain.StatusEmAndamento,
		},
		{
			name:    "pause a running event",
			current: domain.StatusEmAndamento,
			target:  domain.StatusPausado,
		},
		{
			name:    "finish a running event",
			current: domain.StatusEmAndamento,
			target:  domain.StatusFinalizado,
		},
		{
			name:    "finish a paused event",
			current: domain.StatusPausado,
			target:  domain.StatusFinalizado,
		},
		{
			name:    "cancel a pending event",
			current: domain.StatusPendente,
			target:  domain.StatusCancelado,
		},
		{
			name:    "cancel a running event",
			current: domain.StatusEmAndamento,
			target:  domain.StatusCancelado,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTransition(tt.current, tt.target, tt.hasCoordinates)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestStartsEvent(t *testing.T) {
	assert.True(t, startsEvent(domain.StatusPendente, domain.StatusEmAndamento))
	assert.False(t, startsEvent(domain.StatusPausado, domain.StatusEmAndamento), "resuming is not a first start")
	assert.False(t, startsEvent(domain.StatusPendente, domain.StatusCancelado))
}

func TestFinishesEvent(t *testing.T) {
	assert.True(t, finishesEvent(domain.StatusFinalizado))
	assert.False(t, finishesEvent(domain.StatusCancelado))
	assert.False(t, finishesEvent(domain.StatusPausado))
}

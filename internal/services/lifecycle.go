package services

import (
	"eventcheckin/internal/domain"
)

// validateTransition enforces the status state machine on an update request.
// current is the stored status, target the requested one, and hasCoordinates
// whether the same patch carries both latitude and longitude (required to
// start an event for the first time, as the geofencing anchor).
//
// PENDENTE -> EM_ANDAMENTO <-> PAUSADO -> FINALIZADO | CANCELADO.
// FINALIZADO and CANCELADO are terminal.
func validateTransition(current, target domain.EventStatus, hasCoordinates bool) error {
	if current.Terminal() {
		return domain.Conflict("Não é possível alterar um evento que já foi finalizado ou cancelado")
	}

	if current == domain.StatusEmAndamento {
		if target == domain.StatusPendente {
			return domain.Conflict("Não é possível voltar um evento em andamento para pendente")
		}
		if target == domain.StatusEmAndamento {
			return domain.Conflict("O evento já está em andamento")
		}
	}

	if target == domain.StatusEmAndamento && current != domain.StatusPausado && !hasCoordinates {
		return domain.Invalid("Informe a latitude e longitude para iniciar o evento")
	}

	return nil
}

// startsEvent reports whether the transition marks the first start of the
// event, which stamps the actual start time. Resuming from PAUSADO does not.
func startsEvent(current, target domain.EventStatus) bool {
	return target == domain.StatusEmAndamento && current != domain.StatusPausado
}

// finishesEvent reports whether the transition finishes the event, which
// stamps the actual end time.
func finishesEvent(target domain.EventStatus) bool {
	return target == domain.StatusFinalizado
}

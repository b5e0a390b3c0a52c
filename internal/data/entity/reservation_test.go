package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservation_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{ReservationStatusPending, ReservationStatusConfirmed, true},
		{ReservationStatusPending, ReservationStatusCancelled, true},
		{ReservationStatusPending, ReservationStatusCompleted, false},
		{ReservationStatusConfirmed, ReservationStatusCompleted, true},
		{ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{ReservationStatusConfirmed, ReservationStatusPending, false},
		{ReservationStatusCompleted, ReservationStatusCancelled, false},
		{ReservationStatusCompleted, ReservationStatusConfirmed, false},
		{ReservationStatusCancelled, ReservationStatusConfirmed, false},
		{ReservationStatusCancelled, ReservationStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			rsv := &Reservation{Status: tt.from}
			assert.Equal(t, tt.allowed, rsv.CanTransitionTo(tt.to))
		})
	}
}

func TestReservation_TerminalAndCancellable(t *testing.T) {
	pending := &Reservation{Status: ReservationStatusPending}
	confirmed := &Reservation{Status: ReservationStatusConfirmed}
	completed := &Reservation{Status: ReservationStatusCompleted}
	cancelled := &Reservation{Status: ReservationStatusCancelled}

	assert.False(t, pending.IsTerminal())
	assert.False(t, confirmed.IsTerminal())
	assert.True(t, completed.IsTerminal())
	assert.True(t, cancelled.IsTerminal())

	assert.True(t, pending.IsCancellable())
	assert.True(t, confirmed.IsCancellable())
	assert.False(t, completed.IsCancellable())
	assert.False(t, cancelled.IsCancellable())
}

func TestUser_DisplayName(t *testing.T) {
	name := "山田花子"
	withName := &User{Email: "hanako@example.com", Name: &name}
	empty := ""
	blankName := &User{Email: "hanako@example.com", Name: &empty}
	noName := &User{Email: "hanako@example.com"}

	assert.Equal(t, "山田花子", withName.DisplayName())
	assert.Equal(t, "hanako@example.com", blankName.DisplayName())
	assert.Equal(t, "hanako@example.com", noName.DisplayName())
}

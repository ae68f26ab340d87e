package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrtrack/internal/analytics"
	"mrtrack/internal/domain"
	"mrtrack/internal/service"
)

func TestActor_ScopeFieldRep(t *testing.T) {
	tests := []struct {
		name    string
		actor   service.Actor
		in      string
		want    string
		wantErr error
	}{
		{"admin any rep", adminActor, "mr2", "mr2", nil},
		{"admin all reps", adminActor, "", "", nil},
		{"mr defaults to self", rahulActor, "", "mr1", nil},
		{"mr self", rahulActor, "mr1", "mr1", nil},
		{"mr other", rahulActor, "mr2", "", domain.ErrForbidden},
		{"mr unbound", service.Actor{Role: domain.RoleMR}, "", "", domain.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.actor.ScopeFieldRep(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActor_DisplayName(t *testing.T) {
	assert.Equal(t, "Admin", adminActor.DisplayName())
	assert.Equal(t, "ops", service.Actor{Username: "ops"}.DisplayName())
}

func TestCalendar_TodayUsesLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	cal := service.NewCalendar(
		analytics.WithClock(func() time.Time { return time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC) }),
		analytics.WithLocation(ist),
	)

	assert.Equal(t, "2024-03-16", cal.Today())
	assert.Equal(t, "2024-03-16", cal.Engine(nil).Today())
}

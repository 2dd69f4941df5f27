package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	eng, _, _ := newTestEngine(t)

	sched, err := NewScheduler(eng, "@daily", quietLogger())
	require.NoError(t, err)
	assert.Len(t, sched.Entries(), 1)
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	t.Parallel()

	eng, _, _ := newTestEngine(t)

	_, err := NewScheduler(eng, "every other tuesday", quietLogger())
	require.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng, _, _ := newTestEngine(t)

	sched, err := NewScheduler(eng, "0 5 * * *", quietLogger())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_RunNow(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)
	ms.EXPECT().ListShops(mock.Anything).Return([]domain.Shop{}, nil).Once()

	sched, err := NewScheduler(eng, "@daily", quietLogger())
	require.NoError(t, err)

	sched.RunNow()
}

func TestScheduler_RunNow_LogsFailure(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)
	ms.EXPECT().ListShops(mock.Anything).Return(nil, errors.New("db down")).Once()

	sched, err := NewScheduler(eng, "@daily", quietLogger())
	require.NoError(t, err)

	assert.NotPanics(t, sched.RunNow)
}

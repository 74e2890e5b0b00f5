package session

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitisense/entities"
	"vitisense/pkg/weather"
)

func TestStateRoute(t *testing.T) {
	assert.Equal(t, "/", SignedOut.Route())
	assert.Equal(t, "/farm/new", CreatingFarm.Route())
	assert.Equal(t, "/farm/boundary", DrawingBoundary.Route())
	assert.Equal(t, "/dashboard", Dashboard.Route())
	assert.Equal(t, "DrawingBoundary", DrawingBoundary.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeRobot, ParseMode("robot"))
	assert.Equal(t, ModeDrone, ParseMode("drone"))
	assert.Equal(t, ModeDrone, ParseMode(""))
	assert.Equal(t, ModeDrone, ParseMode("submarine"))
}

func TestStoreCreateGet(t *testing.T) {
	st := NewStore(0)
	s := st.Create()
	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, st.Len())

	_, ok = st.Get("nope")
	assert.False(t, ok)

	d := s.Read()
	assert.Equal(t, SignedOut, d.State)
	assert.Equal(t, ModeDrone, d.Mode)
}

func TestStoreEvictsIdleSessions(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	st := NewStore(time.Hour)
	st.now = func() time.Time { return now }

	stale := st.Create()
	kept := st.Create()
	require.Equal(t, 2, st.Len())

	now = now.Add(45 * time.Minute)
	_, ok := st.Get(kept.ID)
	require.True(t, ok)

	now = now.Add(30 * time.Minute)
	fresh := st.Create()
	assert.Equal(t, 2, st.Len())

	_, ok = st.Get(stale.ID)
	assert.False(t, ok)
	got, ok := st.Get(kept.ID)
	require.True(t, ok)
	assert.Same(t, kept, got)
	_, ok = st.Get(fresh.ID)
	assert.True(t, ok)
}

func TestStoreGetDropsExpiredSession(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	st := NewStore(time.Hour)
	st.now = func() time.Time { return now }

	s := st.Create()
	now = now.Add(2 * time.Hour)
	_, ok := st.Get(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
}

func TestNewStoreDefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewStore(0).ttl)
	assert.Equal(t, DefaultTTL, NewStore(-time.Second).ttl)
}

func TestReadReturnsCopy(t *testing.T) {
	s := newSession("x")
	c := entities.Point{1, 2}
	require.NoError(t, s.Update(func(d *Data) error {
		d.CurrentFarm = &entities.Farm{Name: "A", Boundary: entities.Boundary{{0, 0}, {0, 1}, {1, 1}}, Center: &c}
		d.ActiveBoundary = entities.Boundary{{0, 0}, {0, 1}, {1, 1}}
		d.SavedFarms = entities.SavedFarms{{Name: "A"}}
		return nil
	}))

	d := s.Read()
	d.CurrentFarm.Name = "changed"
	d.CurrentFarm.Boundary[0] = entities.Point{9, 9}
	d.CurrentFarm.Center[0] = 9
	d.ActiveBoundary[0] = entities.Point{9, 9}
	d.SavedFarms[0].Name = "changed"

	again := s.Read()
	assert.Equal(t, "A", again.CurrentFarm.Name)
	assert.Equal(t, entities.Point{0, 0}, again.CurrentFarm.Boundary[0])
	assert.Equal(t, 1.0, again.CurrentFarm.Center.Lat())
	assert.Equal(t, entities.Point{0, 0}, again.ActiveBoundary[0])
	assert.Equal(t, "A", again.SavedFarms[0].Name)
}

func TestTakeFlash(t *testing.T) {
	s := newSession("x")
	_ = s.Update(func(d *Data) error { d.Flash = "hello"; return nil })
	assert.Equal(t, "hello", s.TakeFlash())
	assert.Equal(t, "", s.TakeFlash())
}

func TestStaleWeatherDropped(t *testing.T) {
	s := newSession("x")
	older := s.BeginWeather()
	newer := s.BeginWeather()

	fresh := &weather.Snapshot{TemperatureC: 20}
	stale := &weather.Snapshot{TemperatureC: 5}

	assert.Same(t, fresh, s.FinishWeather(newer, fresh))
	assert.Same(t, fresh, s.FinishWeather(older, stale))
	assert.Equal(t, 20.0, s.Read().Weather.TemperatureC)
}

func TestResetWeatherInvalidatesInFlight(t *testing.T) {
	s := newSession("x")
	seq := s.BeginWeather()
	_ = s.Update(func(d *Data) error { s.ResetWeather(d); return nil })

	snap := &weather.Snapshot{TemperatureC: 7}
	assert.Same(t, snap, s.FinishWeather(seq, snap))
	assert.Nil(t, s.Read().Weather)
}

func TestUpdateSerializes(t *testing.T) {
	s := newSession("x")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(func(d *Data) error {
				d.SavedFarms = append(d.SavedFarms, entities.Farm{Name: "f"})
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Len(t, s.Read().SavedFarms, 50)
}

package storefront

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/YelzhanWeb/aquave/internal/adapter/logger"
	"github.com/YelzhanWeb/aquave/internal/app/scheduler"
	"github.com/YelzhanWeb/aquave/internal/domain"
	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []interfaces.StorefrontEvent
	err    error
}

func (p *fakePublisher) PublishEvent(_ context.Context, ev interfaces.StorefrontEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) types() []interfaces.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]interfaces.EventType, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

type staticCatalog struct {
	drinks []domain.Drink
	err    error
}

func (c staticCatalog) ListDrinks(context.Context) ([]domain.Drink, error) {
	return c.drinks, c.err
}

func newService(t *testing.T, repo interfaces.CatalogRepository, pub interfaces.EventPublisher) (*Service, *scheduler.Manual) {
	t.Helper()
	clock := scheduler.NewManual()
	settings := DefaultSettings()
	settings.ReapInterval = 0
	svc := NewService(repo, pub, logger.NewNop(), clock, settings)
	return svc, clock
}

func TestService_EventsReachPublisher(t *testing.T) {
	pub := &fakePublisher{}
	svc, clock := newService(t, staticCatalog{drinks: domain.DefaultDrinks()}, pub)
	require.NoError(t, svc.Start(context.Background()))

	sess := svc.CreateSession(context.Background())
	require.NoError(t, sess.SelectMood("energizing"))
	require.True(t, sess.SelectDrink("drink-5"))
	require.NoError(t, sess.AddToCart("drink-5"))
	for i := 0; i < 3; i++ {
		_, err := sess.AdvanceCheckout()
		require.NoError(t, err)
	}
	clock.Advance(3 * time.Second)

	require.NoError(t, svc.Shutdown(context.Background()))

	assert.Equal(t, []interfaces.EventType{
		interfaces.EventMoodSelected,
		interfaces.EventDrinkSelected,
		interfaces.EventAddedToCart,
		interfaces.EventOrderCompleted,
	}, pub.types())

	last := pub.events[len(pub.events)-1]
	assert.Equal(t, sess.ID(), last.SessionID)
	assert.Regexp(t, `^AQV-\d{6}$`, last.OrderNumber)
	assert.Equal(t, "90.97", last.Total)
}

func TestService_PublishErrorsAreLogged(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	svc, _ := newService(t, nil, pub)
	require.NoError(t, svc.Start(context.Background()))

	sess := svc.CreateSession(context.Background())
	require.NoError(t, sess.SelectMood("party"))

	require.NoError(t, svc.Shutdown(context.Background()))
	assert.Len(t, pub.types(), 1)
}

func TestService_Sessions(t *testing.T) {
	svc, _ := newService(t, nil, nil)
	require.NoError(t, svc.Start(context.Background()))
	defer svc.Shutdown(context.Background())

	sess := svc.CreateSession(context.Background())
	got, err := svc.Session(sess.ID())
	require.NoError(t, err)
	assert.Same(t, sess, got)
	assert.Equal(t, 1, svc.SessionCount())

	require.NoError(t, svc.DisposeSession(context.Background(), sess.ID()))
	_, err = svc.Session(sess.ID())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, svc.DisposeSession(context.Background(), sess.ID()), domain.ErrSessionNotFound)
}

func TestService_HeldSessionIsInertAfterDispose(t *testing.T) {
	pub := &fakePublisher{}
	svc, clock := newService(t, nil, pub)
	require.NoError(t, svc.Start(context.Background()))

	held := svc.CreateSession(context.Background())
	require.NoError(t, svc.DisposeSession(context.Background(), held.ID()))

	assert.ErrorIs(t, held.SelectMood("party"), domain.ErrSessionNotFound)
	assert.False(t, held.SelectDrink("drink-1"))
	_, err := held.AdvanceCheckout()
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, 0, clock.Pending())

	clock.Advance(time.Minute)
	require.NoError(t, svc.Shutdown(context.Background()))
	assert.Empty(t, pub.types())
}

func TestService_ReapIdle(t *testing.T) {
	svc, clock := newService(t, nil, nil)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	require.NoError(t, svc.Start(context.Background()))
	defer svc.Shutdown(context.Background())

	idle := svc.CreateSession(context.Background())
	require.True(t, idle.SelectDrink("drink-1"))
	for i := 0; i < 3; i++ {
		idle.AdvanceCheckout()
	}

	now = now.Add(20 * time.Minute)
	active := svc.CreateSession(context.Background())

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 1, svc.ReapIdle(now))

	_, err := svc.Session(idle.ID())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = svc.Session(active.ID())
	assert.NoError(t, err)
	assert.Equal(t, 0, clock.Pending())
}

func TestService_StartErrors(t *testing.T) {
	svc, _ := newService(t, staticCatalog{err: errors.New("db down")}, nil)
	assert.Error(t, svc.Start(context.Background()))

	dup := domain.DefaultDrinks()
	dup = append(dup, dup[0])
	svc, _ = newService(t, staticCatalog{drinks: dup}, nil)
	assert.ErrorIs(t, svc.Start(context.Background()), domain.ErrDuplicateDrink)
}

func TestService_ReapLoopStopsOnShutdown(t *testing.T) {
	settings := DefaultSettings()
	settings.ReapInterval = time.Millisecond
	settings.IdleTTL = time.Nanosecond
	svc := NewService(nil, nil, logger.NewNop(), scheduler.New(), settings)
	require.NoError(t, svc.Start(context.Background()))

	svc.CreateSession(context.Background())
	require.Eventually(t, func() bool { return svc.SessionCount() == 0 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, svc.Shutdown(ctx))
}

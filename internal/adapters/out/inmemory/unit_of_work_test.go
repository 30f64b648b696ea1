package inmemory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"dispatch/internal/adapters/out/inmemory"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegisteredCourier(t *testing.T, store *inmemory.Store) *courier.Courier {
	t.Helper()

	c, err := courier.NewCourier(kernel.NewUUID(), "tg:741", "Aibek", "+996555123456")
	require.NoError(t, err)
	require.NoError(t, store.AddCourier(c))
	return c
}

func newUnclaimedOrder(t *testing.T) *order.Order {
	t.Helper()

	origin, err := kernel.NewLocation(42.8746, 74.6122)
	require.NoError(t, err)
	destination, err := kernel.NewLocation(42.8800, 74.6300)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		origin, destination,
		"", 1.57, 82.0,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func addOrder(t *testing.T, factory *inmemory.UnitOfWorkFactory, o *order.Order) {
	t.Helper()

	ctx := context.Background()
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))
}

// claimOnce runs the full claim flow one courier would execute.
func claimOnce(store *inmemory.Store, orderID, courierID kernel.UUID) error {
	ctx := context.Background()
	uow := inmemory.NewUnitOfWorkFactory(store).Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, orderID)
	if err != nil {
		return err
	}

	if err = o.Claim(courierID, time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func TestUnitOfWork_ConcurrentClaims_ExactlyOneWinner(t *testing.T) {
	store := inmemory.NewStore()
	factory := inmemory.NewUnitOfWorkFactory(store)

	o := newUnclaimedOrder(t)
	addOrder(t, factory, o)

	const contenders = 16

	courierIDs := make([]kernel.UUID, contenders)
	for i := range courierIDs {
		courierIDs[i] = kernel.NewUUID()
	}

	claimErrors := make([]error, contenders)
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimErrors[i] = claimOnce(store, o.ID(), courierIDs[i])
		}()
	}
	wg.Wait()

	winners := 0
	var winnerID kernel.UUID
	for i, err := range claimErrors {
		if err == nil {
			winners++
			winnerID = courierIDs[i]
			continue
		}
		assert.ErrorIs(t, err, order.ErrAlreadyClaimed)
	}
	require.Equal(t, 1, winners)

	// Stored state must carry exactly the winner's binding.
	ctx := context.Background()
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	stored, err := uow.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, uow.Rollback(ctx))

	assert.Equal(t, order.Assigned, stored.Status())
	require.NotNil(t, stored.CourierID())
	assert.Equal(t, winnerID, *stored.CourierID())
}

func TestUnitOfWork_GetForUpdate_HeldLock_ReturnsOrderBusy(t *testing.T) {
	store := inmemory.NewStore()
	store.SetLockWait(50 * time.Millisecond)
	factory := inmemory.NewUnitOfWorkFactory(store)

	o := newUnclaimedOrder(t)
	addOrder(t, factory, o)

	ctx := context.Background()

	holder := factory.Create()
	require.NoError(t, holder.Begin(ctx))
	_, err := holder.OrderRepository().GetForUpdate(ctx, o.ID())
	require.NoError(t, err)

	contender := factory.Create()
	require.NoError(t, contender.Begin(ctx))
	busyOrder, err := contender.OrderRepository().GetForUpdate(ctx, o.ID())
	assert.Nil(t, busyOrder)
	require.ErrorIs(t, err, ports.ErrOrderBusy)
	require.NoError(t, contender.Rollback(ctx))

	// The lock dies with the holder's unit of work.
	require.NoError(t, holder.Rollback(ctx))

	retry := factory.Create()
	require.NoError(t, retry.Begin(ctx))
	lockedOrder, err := retry.OrderRepository().GetForUpdate(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, o.ID(), lockedOrder.ID())
	require.NoError(t, retry.Rollback(ctx))
}

func TestUnitOfWork_Rollback_DiscardsStagedWrites(t *testing.T) {
	store := inmemory.NewStore()
	factory := inmemory.NewUnitOfWorkFactory(store)

	o := newUnclaimedOrder(t)
	addOrder(t, factory, o)

	ctx := context.Background()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	repo := uow.OrderRepository()
	claimed, err := repo.GetForUpdate(ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, claimed.Claim(kernel.NewUUID(), time.Now().UTC()))
	require.NoError(t, repo.Update(ctx, claimed))
	require.NoError(t, uow.Rollback(ctx))

	reader := factory.Create()
	require.NoError(t, reader.Begin(ctx))
	stored, err := reader.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, reader.Rollback(ctx))

	assert.Equal(t, order.New, stored.Status())
	assert.Nil(t, stored.CourierID())
}

func TestUnitOfWork_CommitWithoutBegin_ReturnsError(t *testing.T) {
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	uow := factory.Create()

	assert.ErrorIs(t, uow.Commit(context.Background()), ports.ErrNoActiveTransaction)
	assert.ErrorIs(t, uow.Rollback(context.Background()), ports.ErrNoActiveTransaction)
}

func TestOrderRepository_UpdateUnknownOrder_ReturnsNotFound(t *testing.T) {
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	ctx := context.Background()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	err := uow.OrderRepository().Update(ctx, newUnclaimedOrder(t))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderRepository_BoardQueries(t *testing.T) {
	store := inmemory.NewStore()
	factory := inmemory.NewUnitOfWorkFactory(store)
	ctx := context.Background()

	origin, err := kernel.NewLocation(42.8746, 74.6122)
	require.NoError(t, err)
	destination, err := kernel.NewLocation(42.8800, 74.6300)
	require.NoError(t, err)

	base := time.Now().UTC()
	makeOrder := func(createdAt time.Time) *order.Order {
		o, orderErr := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			origin, destination, "", 1.57, 82.0, createdAt,
		)
		require.NoError(t, orderErr)
		return o
	}

	stale := makeOrder(base.Add(-1 * time.Hour))
	fresh := makeOrder(base.Add(-1 * time.Minute))
	claimed := makeOrder(base.Add(-2 * time.Hour))
	require.NoError(t, claimed.Claim(kernel.NewUUID(), base))

	for _, o := range []*order.Order{fresh, stale, claimed} {
		addOrder(t, factory, o)
	}

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	repo := uow.OrderRepository()

	open, err := repo.GetAllInNewStatus(ctx)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, stale.ID(), open[0].ID())
	assert.Equal(t, fresh.ID(), open[1].ID())

	overdue, err := repo.GetAllNewCreatedBefore(ctx, base.Add(-30*time.Minute))
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, stale.ID(), overdue[0].ID())
}

func TestStore_TariffAndIdentity(t *testing.T) {
	store := inmemory.NewStore()
	factory := inmemory.NewUnitOfWorkFactory(store)
	ctx := context.Background()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	// Without configuration the tariff is empty but constructed: it must pass
	// validation and quote every route at zero rather than fail.
	tariff, err := uow.TariffRepository().GetCurrent(ctx)
	require.NoError(t, err)
	assert.True(t, tariff.IsEmpty())
	require.NoError(t, tariff.Validate())

	origin, err := kernel.NewLocation(42.8746, 74.6122)
	require.NoError(t, err)
	destination, err := kernel.NewLocation(42.8800, 74.6300)
	require.NoError(t, err)

	quote, err := services.NewOrderQuoter().QuoteRoute(origin, destination, tariff, time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, quote.Price)
	assert.Positive(t, quote.DistanceKm)

	rule, err := pricing.NewRule("city", 0, 0, 50.0, 10.0, 1.0)
	require.NoError(t, err)
	configured, err := pricing.NewTariff([]pricing.Rule{rule}, nil)
	require.NoError(t, err)
	require.NoError(t, store.SetTariff(configured))

	tariff, err = uow.TariffRepository().GetCurrent(ctx)
	require.NoError(t, err)
	assert.False(t, tariff.IsEmpty())

	_, err = uow.IdentityResolver().Resolve(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	c := newRegisteredCourier(t, store)

	resolved, err := uow.IdentityResolver().Resolve(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, c.ExternalCode(), resolved.ExternalCode())

	byCode, err := uow.IdentityResolver().ResolveByCode(ctx, c.ExternalCode())
	require.NoError(t, err)
	assert.Equal(t, c.ID(), byCode.ID())
}

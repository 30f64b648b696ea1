package identityrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/identityrepo"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// IdentityResolverIntegrationTestSuite provides integration tests for
// GormIdentityResolver using PostgreSQL containers, covering both the
// provisioning surface (Add, Update) and the resolution paths the claim
// flow depends on.
type IdentityResolverIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	resolver  *identityrepo.GormIdentityResolver
}

func (suite *IdentityResolverIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&identityrepo.CourierDTO{}))
}

func (suite *IdentityResolverIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers").Error)

	suite.resolver = identityrepo.NewGormIdentityResolver(suite.db)
}

func (suite *IdentityResolverIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *IdentityResolverIntegrationTestSuite) TestAdd_ValidCourier_RoundTripsAllFields() {
	ctx := context.Background()

	registered := suite.createCourier("tg:741")
	suite.Require().NoError(suite.resolver.Add(ctx, registered))

	resolved, err := suite.resolver.Resolve(ctx, registered.ID())
	suite.Require().NoError(err)

	suite.Equal(registered.ID(), resolved.ID())
	suite.Equal(registered.ExternalCode(), resolved.ExternalCode())
	suite.Equal(registered.Name(), resolved.Name())
	suite.Equal(registered.Phone(), resolved.Phone())
	suite.False(resolved.IsBlocked())
}

func (suite *IdentityResolverIntegrationTestSuite) TestAdd_InvalidCourier_RejectedBeforePersistence() {
	ctx := context.Background()

	err := suite.resolver.Add(ctx, nil)
	suite.Require().ErrorIs(err, courier.ErrCourierIsNotConstructed)

	err = suite.resolver.Add(ctx, &courier.Courier{})
	suite.Require().ErrorIs(err, courier.ErrCourierIsNotConstructed)

	suite.assertCourierCount(0)
}

func (suite *IdentityResolverIntegrationTestSuite) TestAdd_DuplicateExternalCode_ReturnsError() {
	ctx := context.Background()

	suite.Require().NoError(suite.resolver.Add(ctx, suite.createCourier("tg:741")))

	err := suite.resolver.Add(ctx, suite.createCourier("tg:741"))
	suite.Require().Error(err)
	suite.assertCourierCount(1)
}

func (suite *IdentityResolverIntegrationTestSuite) TestUpdate_BlockedFlagPersists() {
	ctx := context.Background()

	registered := suite.createCourier("tg:741")
	suite.Require().NoError(suite.resolver.Add(ctx, registered))

	registered.Block()
	suite.Require().NoError(suite.resolver.Update(ctx, registered))

	blocked, err := suite.resolver.ResolveByCode(ctx, registered.ExternalCode())
	suite.Require().NoError(err)
	suite.True(blocked.IsBlocked())

	registered.Unblock()
	suite.Require().NoError(suite.resolver.Update(ctx, registered))

	unblocked, err := suite.resolver.Resolve(ctx, registered.ID())
	suite.Require().NoError(err)
	suite.False(unblocked.IsBlocked())
}

func (suite *IdentityResolverIntegrationTestSuite) TestUpdate_NonExistentCourier_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.resolver.Update(ctx, suite.createCourier("tg:741"))

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *IdentityResolverIntegrationTestSuite) TestResolve_NonExistentCourier_ReturnsNotFoundError() {
	resolved, err := suite.resolver.Resolve(context.Background(), kernel.NewUUID())

	suite.Nil(resolved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *IdentityResolverIntegrationTestSuite) TestResolveByCode_EmptyCode_ReturnsValidationError() {
	resolved, err := suite.resolver.ResolveByCode(context.Background(), "")

	suite.Nil(resolved)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

// createCourier builds an unblocked courier identity that has not been persisted.
func (suite *IdentityResolverIntegrationTestSuite) createCourier(externalCode string) *courier.Courier {
	registered, err := courier.NewCourier(kernel.NewUUID(), externalCode, "Aibek", "+996555123456")
	suite.Require().NoError(err)
	return registered
}

// assertCourierCount verifies the number of courier identities in the database.
func (suite *IdentityResolverIntegrationTestSuite) assertCourierCount(expected int) {
	var count int64
	err := suite.db.Model(&identityrepo.CourierDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestIdentityResolverIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityResolverIntegrationTestSuite))
}

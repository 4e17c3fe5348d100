package otprepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/otprepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/otp"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// OtpRepositoryIntegrationTestSuite verifies credential persistence behavior
// against a real PostgreSQL instance.
type OtpRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *otprepo.GormOtpRepository
	tracker    *MockAggregateTracker
}

func (suite *OtpRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&otprepo.OtpDTO{}))
}

func (suite *OtpRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE otps").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = otprepo.NewGormOtpRepository(suite.db, suite.tracker)
}

func (suite *OtpRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OtpRepositoryIntegrationTestSuite) newPendingRecord(digits string, code otp.PlainCode, now time.Time) *otp.Record {
	mobile, err := kernel.NewMobile(digits)
	suite.Require().NoError(err)

	record, err := otp.NewRecord(mobile, code, otp.DispatchDetails{
		GroupKey:     "OP1|JRE1",
		OperatorID:   "OP1",
		JREID:        "JRE1",
		OrdersCount:  3,
		TotalItems:   5,
		TotalWeight:  21.95,
		TotalPackets: 3,
	}, now)
	suite.Require().NoError(err)
	return record
}

func (suite *OtpRepositoryIntegrationTestSuite) TestPut_NewRecord_RoundTrip() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	record := suite.newPendingRecord("9876543210", "123456", now)
	suite.tracker.On("TrackAggregate", record.ID(), record).Once()

	suite.Require().NoError(suite.repository.Put(ctx, record))

	retrieved, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)

	suite.Equal(record.ID(), retrieved.ID())
	suite.Equal(otp.StatusPending, retrieved.Status())
	suite.Equal(otp.UseCaseSecureDispatch, retrieved.UseCase())
	suite.Equal(record.DispatchDetails(), retrieved.DispatchDetails())
	suite.True(retrieved.Matches("123456"))
	suite.False(retrieved.Matches("654321"))
	suite.WithinDuration(record.ExpiresAt(), retrieved.ExpiresAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OtpRepositoryIntegrationTestSuite) TestPut_ExistingID_ReplacesRecord() {
	ctx := context.Background()
	now := time.Now().UTC()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first := suite.newPendingRecord("9876543210", "111111", now)
	suite.Require().NoError(suite.repository.Put(ctx, first))

	second := suite.newPendingRecord("9876543210", "222222", now.Add(time.Minute))
	suite.Equal(first.ID(), second.ID())
	suite.Require().NoError(suite.repository.Put(ctx, second))

	var count int64
	suite.Require().NoError(suite.db.Model(&otprepo.OtpDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	retrieved, err := suite.repository.Get(ctx, first.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.Matches("111111"))
	suite.True(retrieved.Matches("222222"))
}

func (suite *OtpRepositoryIntegrationTestSuite) TestUpdate_PersistsVerification() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	record := suite.newPendingRecord("9876543210", "123456", now)
	suite.Require().NoError(suite.repository.Put(ctx, record))

	suite.Require().NoError(record.MarkVerified("SELLER1", now.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, record))

	retrieved, err := suite.repository.Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsVerified())
	suite.Equal("SELLER1", retrieved.VerifiedBy())
	suite.Require().NotNil(retrieved.VerifiedAt())
}

func (suite *OtpRepositoryIntegrationTestSuite) TestGet_NonExistentID_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, "+919999999999_SECURE_DISPATCH")

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OtpRepositoryIntegrationTestSuite) TestDelete_RemovesRecord() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	record := suite.newPendingRecord("9876543210", "123456", time.Now().UTC())
	suite.Require().NoError(suite.repository.Put(ctx, record))

	suite.Require().NoError(suite.repository.Delete(ctx, record.ID()))

	_, err := suite.repository.Get(ctx, record.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OtpRepositoryIntegrationTestSuite) TestDeleteExpired_RemovesOnlyExpiredRecords() {
	ctx := context.Background()
	now := time.Now().UTC()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	expired := suite.newPendingRecord("9876543210", "111111", now.Add(-2*otp.Validity))
	fresh := suite.newPendingRecord("9123456789", "222222", now)

	suite.Require().NoError(suite.repository.Put(ctx, expired))
	suite.Require().NoError(suite.repository.Put(ctx, fresh))

	deleted, err := suite.repository.DeleteExpired(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)

	_, err = suite.repository.Get(ctx, expired.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.Get(ctx, fresh.ID())
	suite.Require().NoError(err)
}

func TestOtpRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OtpRepositoryIntegrationTestSuite))
}

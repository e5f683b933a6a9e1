//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/infra/cache"
	"dh-booking/tests/common/builder"
	cachemock "dh-booking/tests/mock/cache"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var productID = uuid.MustParse("6f1c2a7e-3b4d-4c5e-8f90-1a2b3c4d5e6f")

const (
	genKey     = "availability:{6f1c2a7e-3b4d-4c5e-8f90-1a2b3c4d5e6f}:gen"
	juneEntry0 = "availability:{6f1c2a7e-3b4d-4c5e-8f90-1a2b3c4d5e6f}:0:2030-06-01:2030-06-30"
	juneEntry4 = "availability:{6f1c2a7e-3b4d-4c5e-8f90-1a2b3c4d5e6f}:4:2030-06-01:2030-06-30"
)

type AvailabilityCacheTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	client   *cachemock.MockClient
	cache    *cache.RedisAvailabilityCache
	june     reservation.Period
}

func (s *AvailabilityCacheTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.client = cachemock.NewMockClient(s.mockCtrl)
	s.cache = cache.NewRedisAvailabilityCache(s.client, 30*time.Second)
	s.june = builder.MustPeriod(builder.Day(2030, time.June, 1), builder.Day(2030, time.June, 30))
}

func (s *AvailabilityCacheTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityCacheSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityCacheTestSuite))
}

func (s *AvailabilityCacheTestSuite) TestSetThenGet() {
	free := []reservation.Period{
		builder.MustPeriod(builder.Day(2030, time.June, 1), builder.Day(2030, time.June, 9)),
		builder.MustPeriod(builder.Day(2030, time.June, 13), builder.Day(2030, time.June, 30)),
	}

	var stored string
	s.client.EXPECT().
		Eval(gomock.Any(), gomock.Any(), []string{genKey, juneEntry0}, int64(0), gomock.Any(), int64(30000)).
		DoAndReturn(func(_ context.Context, _ string, _ []string, args ...any) *redis.Cmd {
			stored = args[1].(string)
			return redis.NewCmdResult(int64(1), nil)
		})
	s.cache.Set(s.ctx, productID, s.june, 0, free)
	s.JSONEq(`[{"s":"2030-06-01","e":"2030-06-09"},{"s":"2030-06-13","e":"2030-06-30"}]`, stored)

	gomock.InOrder(
		s.client.EXPECT().Get(gomock.Any(), genKey).Return(redis.NewStringResult("", redis.Nil)),
		s.client.EXPECT().Get(gomock.Any(), juneEntry0).
			DoAndReturn(func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult(stored, nil)
			}),
	)
	got, version, hit := s.cache.Get(s.ctx, productID, s.june)
	s.True(hit)
	s.Equal(int64(0), version)
	s.Equal(free, got)
}

func (s *AvailabilityCacheTestSuite) TestEmptyFreeListIsAHit() {
	s.client.EXPECT().Get(gomock.Any(), genKey).Return(redis.NewStringResult("4", nil))
	s.client.EXPECT().Get(gomock.Any(), juneEntry4).Return(redis.NewStringResult("[]", nil))

	got, version, hit := s.cache.Get(s.ctx, productID, s.june)
	s.True(hit)
	s.Equal(int64(4), version)
	s.Empty(got)
}

func (s *AvailabilityCacheTestSuite) TestCorruptEntryIsAMiss() {
	cases := map[string]string{
		"not json":        `{"s":`,
		"bad date":        `[{"s":"2030-13-01","e":"2030-13-02"}]`,
		"inverted period": `[{"s":"2030-06-10","e":"2030-06-01"}]`,
	}
	for name, raw := range cases {
		s.Run(name, func() {
			s.client.EXPECT().Get(gomock.Any(), genKey).Return(redis.NewStringResult("4", nil))
			s.client.EXPECT().Get(gomock.Any(), juneEntry4).Return(redis.NewStringResult(raw, nil))

			got, version, hit := s.cache.Get(s.ctx, productID, s.june)
			s.False(hit)
			s.Nil(got)
			s.Equal(int64(4), version, "a corrupt entry still reports the generation so it can be overwritten")
		})
	}
}

func (s *AvailabilityCacheTestSuite) TestMissingEntryIsAMiss() {
	s.client.EXPECT().Get(gomock.Any(), genKey).Return(redis.NewStringResult("4", nil))
	s.client.EXPECT().Get(gomock.Any(), juneEntry4).Return(redis.NewStringResult("", redis.Nil))

	_, version, hit := s.cache.Get(s.ctx, productID, s.june)
	s.False(hit)
	s.Equal(int64(4), version)
}

func (s *AvailabilityCacheTestSuite) TestGenerationReadFailureDisablesWrite() {
	s.client.EXPECT().Get(gomock.Any(), genKey).Return(redis.NewStringResult("", errors.New("connection refused")))

	_, version, hit := s.cache.Get(s.ctx, productID, s.june)
	s.False(hit)
	s.Equal(int64(-1), version)

	// no Eval expected
	s.cache.Set(s.ctx, productID, s.june, version, nil)
}

func (s *AvailabilityCacheTestSuite) TestSetFailuresAreSwallowed() {
	s.Run("generation moved", func() {
		s.client.EXPECT().Eval(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(redis.NewCmdResult(int64(0), nil))
		s.NotPanics(func() { s.cache.Set(s.ctx, productID, s.june, 4, nil) })
	})
	s.Run("redis error", func() {
		s.client.EXPECT().Eval(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(redis.NewCmdResult(nil, errors.New("READONLY")))
		s.NotPanics(func() { s.cache.Set(s.ctx, productID, s.june, 4, nil) })
	})
}

func (s *AvailabilityCacheTestSuite) TestInvalidateBumpsGeneration() {
	s.client.EXPECT().Incr(gomock.Any(), genKey).Return(redis.NewIntResult(5, nil))
	s.cache.Invalidate(s.ctx, productID)
}

func (s *AvailabilityCacheTestSuite) TestNonPositiveTTLFallsBack() {
	c := cache.NewRedisAvailabilityCache(s.client, 0)
	s.client.EXPECT().
		Eval(gomock.Any(), gomock.Any(), []string{genKey, juneEntry0}, int64(0), "[]", int64(30000)).
		Return(redis.NewCmdResult(int64(1), nil))
	c.Set(s.ctx, productID, s.june, 0, []reservation.Period{})
}

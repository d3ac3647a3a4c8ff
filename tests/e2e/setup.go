//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"plugin-storefront/cmd/bootstrap"
	"plugin-storefront/cmd/bootstrap/components"
	"plugin-storefront/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*redis.Client, *gin.Engine, config.Config) {
	redisInfo := startContainers(t)

	// プロセス毎に違うキープレフィックスで分離
	testConfig := createTestConfig(redisInfo)

	client, router, cfg, app := buildE2EApp(testConfig)
	require.NotNil(t, router, "Routerのセットアップに失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	slog.Info("E2E環境の準備が完了しました",
		"redis_host", redisInfo.Host,
		"redis_port", redisInfo.Port.Port(),
		"key_prefix", cfg.Redis.KeyPrefix)

	return client, router, cfg
}

// ------------------------------------------------------------
// コンテナ起動関数
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startRedisContainerOnce(t)

	redisInfo, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "Redisコンテナ情報の取得に失敗")

	return redisInfo
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// Returns redis client, router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(testConfig config.Config) (*redis.Client, *gin.Engine, config.Config, *fx.App) {
	var (
		router *gin.Engine
		cfg    config.Config
		client *redis.Client
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return testConfig }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		bootstrap.QueueModule,
		bootstrap.JWTModule,
		bootstrap.CatalogModule,
		components.StoreModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg, &client),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fxアプリケーションの起動に失敗しました")
	}

	return client, router, cfg, app
}

func createTestConfig(redisInfo ContainerInfo) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Redis.Addr = fmt.Sprintf("%s:%s", redisInfo.Host, redisInfo.Port.Port())
	testConfig.Redis.KeyPrefix = "e2e-" + uuid.NewString()[:8]
	return testConfig
}

// ------------------------------------------------------------
// コンテナ起動の共通関数
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Redisコンテナを一度だけ起動／再利用
// ------------------------------------------------------------
func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd: []string{
				"redis-server",
				"--save", "", // 永続化無効
				"--appendonly", "no",
			},
			WaitingFor: wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Name:       "redis-e2e",
			Labels:     map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "Redisコンテナの起動に失敗")

		t.Cleanup(func() {
			if redisTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := redisTestContainer.Terminate(ctx); err != nil {
					slog.Warn("Redisコンテナの終了に失敗しました", "error", err.Error())
				}
			}
		})
	})
}

// ------------------------------------------------------------
// コンテナ関連の共通ユーティリティ関数
// ------------------------------------------------------------
func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	client, router, cfg := setupE2EEnvironment(t)
	s.Redis = client
	s.Router = router
	s.Config = cfg
	require.NotNil(t, client, "Redisのセットアップに失敗")
	require.NotEmpty(t, s.Config, "Configの取得に失敗")
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	// プレフィックス配下のキーだけを消してシナリオ間を分離
	ctx := context.Background()
	iter := s.Redis.Scan(ctx, 0, s.Config.Redis.KeyPrefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		require.NoError(s.T(), s.Redis.Del(ctx, iter.Val()).Err(), "Failed to reset redis state")
	}
	require.NoError(s.T(), iter.Err(), "Failed to scan redis keys")
}

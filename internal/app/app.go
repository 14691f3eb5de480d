package app

import (
	"time"

	"github.com/Ewen02/swipe-movie-sub000/internal/config"
	http_init "github.com/Ewen02/swipe-movie-sub000/internal/delivery/http/init"
	http_recommend "github.com/Ewen02/swipe-movie-sub000/internal/delivery/http/recommend"
	http_room "github.com/Ewen02/swipe-movie-sub000/internal/delivery/http/room"
	http_swipe "github.com/Ewen02/swipe-movie-sub000/internal/delivery/http/swipe"
	ws_notifier "github.com/Ewen02/swipe-movie-sub000/internal/delivery/ws/notifier"
	infra_pg_init "github.com/Ewen02/swipe-movie-sub000/internal/infra/postgres/init"
	infra_postgres_library "github.com/Ewen02/swipe-movie-sub000/internal/infra/postgres/library"
	infra_postgres_match "github.com/Ewen02/swipe-movie-sub000/internal/infra/postgres/match"
	infra_postgres_room "github.com/Ewen02/swipe-movie-sub000/internal/infra/postgres/room"
	infra_postgres_swipe "github.com/Ewen02/swipe-movie-sub000/internal/infra/postgres/swipe"
	infra_quota "github.com/Ewen02/swipe-movie-sub000/internal/infra/quota"
	infra_redis_cache "github.com/Ewen02/swipe-movie-sub000/internal/infra/redis/cache"
	infra_redis_init "github.com/Ewen02/swipe-movie-sub000/internal/infra/redis/init"
	infra_tmdb "github.com/Ewen02/swipe-movie-sub000/internal/infra/tmdb"
	usecase_match "github.com/Ewen02/swipe-movie-sub000/internal/usecase/match"
	usecase_recommend "github.com/Ewen02/swipe-movie-sub000/internal/usecase/recommend"
	usecase_room "github.com/Ewen02/swipe-movie-sub000/internal/usecase/room"
	usecase_swipe "github.com/Ewen02/swipe-movie-sub000/internal/usecase/swipe"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	cache := infra_redis_cache.New(redisConn)
	catalog := infra_tmdb.New(cfg.Catalog)

	roomRepository := infra_postgres_room.New(pgConn)
	swipeRepository := infra_postgres_swipe.New(pgConn)
	matchRepository := infra_postgres_match.New(pgConn)
	libraryRepository := infra_postgres_library.New(pgConn)
	quotaService := infra_quota.New(pgConn, cfg.Quota)

	roomUC := usecase_room.New(roomRepository)

	hub := ws_notifier.NewHub()
	go hub.Run()

	detector := usecase_match.New(
		swipeRepository,
		matchRepository,
		roomUC,
		catalog,
		hub,
		cfg.Engine.MatchThreshold,
	)

	engine := usecase_recommend.New(
		catalog,
		libraryRepository,
		cache,
		time.Duration(cfg.Engine.CacheTTLMs)*time.Millisecond,
		cfg.Engine.MaxCachedPages,
	)

	ledger := usecase_swipe.New(
		swipeRepository,
		roomRepository,
		quotaService,
		cache,
		engine,
		detector,
	)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_swipe.New(ledger))
	controllerPool.Add(http_recommend.New(engine, roomUC))
	controllerPool.Add(http_room.New(roomUC, detector))
	controllerPool.Add(ws_notifier.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}

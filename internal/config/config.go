package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Catalog struct {
	BaseURL string
	APIKey  string
}

type Engine struct {
	MatchThreshold int
	CacheTTLMs     int
	MaxCachedPages int
}

type Quota struct {
	FreeSwipesPerRoom    int
	PremiumSwipesPerRoom int // -1 means unlimited
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Catalog  Catalog
	Engine   Engine
	Quota    Quota
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Catalog:  *newCatalog(),
		Engine:   *newEngine(),
		Quota:    *newQuota(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "swipemovie"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		BaseURL: getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		APIKey:  getenv("TMDB_API_KEY", ""),
	}
}

func newEngine() *Engine {
	return &Engine{
		MatchThreshold: getenvInt("MATCH_THRESHOLD", 2),
		CacheTTLMs:     getenvInt("RECOMMENDATION_CACHE_TTL_MS", 120_000),
		MaxCachedPages: getenvInt("RECOMMENDATION_MAX_PAGES", 20),
	}
}

func newQuota() *Quota {
	return &Quota{
		FreeSwipesPerRoom:    getenvInt("QUOTA_FREE_SWIPES", 50),
		PremiumSwipesPerRoom: getenvInt("QUOTA_PREMIUM_SWIPES", -1),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("%s %s=%q is not a number, using %d", logtag, key, val, defaultValue)
		return defaultValue
	}
	return n
}

package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/snapmenu/backend/internal/model"
)

const (
	searchLimit = 15
	recentLimit = 20

	recentCacheKey = "recipes:recent"
	recentCacheTTL = 30 * time.Second
)

// SearchService ranks recipes by weighted substring relevance.
type SearchService struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewSearchService creates a SearchService. cache may be nil to disable
// the recent-recipes cache.
func NewSearchService(db *gorm.DB, cache *redis.Client) *SearchService {
	return &SearchService{db: db, cache: cache}
}

// Search returns recipes matching query, most relevant first. A blank
// query returns the most recent recipes instead.
//
// Relevance is decided by the highest-priority field containing the query,
// case-folded: title 10, ingredients 8, description 6, dietary tags 4,
// difficulty 2, else 1. A recipe is included when any of those fields or
// cooking_time contains the query. Ties break on created_at descending and
// at most 15 rows come back.
func (s *SearchService) Search(ctx context.Context, query string) ([]model.Recipe, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.Recent(ctx)
	}

	like := "%" + strings.ToLower(q) + "%"
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).Raw(`
		SELECT *,
		       CASE
		         WHEN LOWER(recipe_title) LIKE @q THEN 10
		         WHEN LOWER(ingredients) LIKE @q THEN 8
		         WHEN LOWER(recipe_description) LIKE @q THEN 6
		         WHEN LOWER(dietary_tags) LIKE @q THEN 4
		         WHEN LOWER(difficulty) LIKE @q THEN 2
		         ELSE 1
		       END AS relevance_score
		FROM recipes
		WHERE LOWER(recipe_title) LIKE @q
		   OR LOWER(recipe_description) LIKE @q
		   OR LOWER(ingredients) LIKE @q
		   OR LOWER(dietary_tags) LIKE @q
		   OR LOWER(difficulty) LIKE @q
		   OR LOWER(cooking_time) LIKE @q
		ORDER BY relevance_score DESC, created_at DESC
		LIMIT @limit`,
		map[string]interface{}{"q": like, "limit": searchLimit},
	).Scan(&recipes).Error
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	return recipes, nil
}

// Recent returns the 20 most recently created recipes, the stand-in for
// "popular". Served from the Redis cache when one is configured; cache
// faults fall through to the database.
func (s *SearchService) Recent(ctx context.Context) ([]model.Recipe, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, recentCacheKey).Result(); err == nil {
			var recipes []model.Recipe
			if err := json.Unmarshal([]byte(cached), &recipes); err == nil {
				return recipes, nil
			}
		}
	}

	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(recipes); err == nil {
			if err := s.cache.Set(ctx, recentCacheKey, payload, recentCacheTTL).Err(); err != nil {
				log.Printf("failed to cache recent recipes: %v", err)
			}
		}
	}

	return recipes, nil
}

// invalidateRecent drops the cached recent-recipes list after an insert.
func invalidateRecent(ctx context.Context, cache *redis.Client) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, recentCacheKey).Err(); err != nil {
		log.Printf("failed to invalidate recent recipes cache: %v", err)
	}
}

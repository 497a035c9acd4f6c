package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/lumicoach/coaching-api/redis"
)

var geoClient = &http.Client{Timeout: 5 * time.Second}

// LookupRegion resolves a visitor IP to a lowercase region name
// ("europe", "north america", ...). Best effort only: any failure returns
// an empty string and the caller falls back to the default price entry.
// Results are cached in Redis for 24h when the cache is available.
func LookupRegion(ip string) string {
	if ip == "" {
		return ""
	}

	cacheKey := "geo:" + ip
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, cacheKey).Result(); err == nil {
			return cached
		}
	}

	baseURL := os.Getenv("GEOLOCATION_API_URL")
	if baseURL == "" {
		baseURL = "http://ip-api.com/json"
	}

	resp, err := geoClient.Get(fmt.Sprintf("%s/%s?fields=status,continent", baseURL, ip))
	if err != nil {
		log.Printf("Geolocation lookup failed for %s: %v", ip, err)
		return ""
	}
	defer resp.Body.Close()

	var result struct {
		Status    string `json:"status"`
		Continent string `json:"continent"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.Status != "success" {
		return ""
	}

	region := strings.ToLower(result.Continent)
	if redis.Client != nil {
		redis.Client.Set(redis.Ctx, cacheKey, region, 24*time.Hour)
	}
	return region
}

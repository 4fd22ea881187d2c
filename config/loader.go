package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// defaultFeedURLs are the MTA GTFS-Realtime endpoints, one per feed group.
var defaultFeedURLs = map[FeedGroup]string{
	Group123:  "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs",
	GroupACE:  "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs-ace",
	GroupBDFM: "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs-bdfm",
	GroupG:    "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs-g",
	GroupJZ:   "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs-jz",
	GroupL:    "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs-l",
	GroupNQRW: "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs-nqrw",
	Group7:    "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs-7",
	GroupSI:   "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs-si",
}

// groupAliases accepts the legacy numeric feed ids used by older clients of
// the status endpoint alongside the canonical group names.
var groupAliases = map[string]FeedGroup{
	"1":  Group123,
	"26": GroupACE,
	"16": GroupL,
	"21": GroupNQRW,
	"31": GroupG,
	"36": GroupJZ,
	"51": Group7,
	"si": GroupSI,
}

// Load reads configuration from the given yaml file and applies environment
// overrides. A missing file is not an error; defaults are used instead.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Feeds: map[FeedGroup]string{},
		Static: StaticConfig{
			StopsPath:  "stops.txt",
			RoutesPath: "routes.txt",
		},
		Firestore: FirestoreConfig{
			CredentialsFile: "./firebase-credentials.json",
		},
		TimeoutMS: 30000,
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	for group := range cfg.Feeds {
		if _, ok := defaultFeedURLs[group]; !ok {
			return nil, fmt.Errorf("unsupported feed group %q in config", group)
		}
	}
	for group, url := range defaultFeedURLs {
		if cfg.Feeds[group] == "" {
			cfg.Feeds[group] = url
		}
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.APIKey = getEnv("MTA_API_KEY", cfg.APIKey)
	cfg.Static.StopsPath = getEnv("STOPS_FILE", cfg.Static.StopsPath)
	cfg.Static.RoutesPath = getEnv("ROUTES_FILE", cfg.Static.RoutesPath)
	cfg.Firestore.ProjectID = getEnv("FIRESTORE_PROJECT_ID", cfg.Firestore.ProjectID)
	cfg.Firestore.CredentialsFile = getEnv("FIRESTORE_CREDENTIALS", cfg.Firestore.CredentialsFile)
	cfg.TimeoutMS = getEnvInt("FEED_TIMEOUT_MS", cfg.TimeoutMS)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// ResolveGroup maps a requested feed identifier to a supported feed group.
// Both canonical names ("ACE") and legacy numeric ids ("26") are accepted,
// case-insensitively.
func ResolveGroup(id string) (FeedGroup, bool) {
	if g, ok := groupAliases[strings.ToLower(id)]; ok {
		return g, true
	}
	g := FeedGroup(strings.ToUpper(id))
	if _, ok := defaultFeedURLs[g]; ok {
		return g, true
	}
	return "", false
}

// Groups returns the supported feed groups in a stable order.
func Groups() []FeedGroup {
	return []FeedGroup{Group123, GroupACE, GroupBDFM, GroupG, GroupJZ, GroupL, GroupNQRW, Group7, GroupSI}
}

// URL returns the realtime endpoint for a feed group.
func (c *Config) URL(group FeedGroup) string {
	return c.Feeds[group]
}

// Timeout returns the per-fetch timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

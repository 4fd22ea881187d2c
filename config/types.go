package config

// FeedGroup names a bundle of subway lines that share one GTFS-Realtime endpoint.
type FeedGroup string

// The closed set of supported feed groups.
const (
	Group123  FeedGroup = "123"
	GroupACE  FeedGroup = "ACE"
	GroupBDFM FeedGroup = "BDFM"
	GroupG    FeedGroup = "G"
	GroupJZ   FeedGroup = "JZ"
	GroupL    FeedGroup = "L"
	GroupNQRW FeedGroup = "NQRW"
	Group7    FeedGroup = "7"
	GroupSI   FeedGroup = "SI"
)

// FirestoreConfig contains the external document-store settings.
type FirestoreConfig struct {
	ProjectID       string `yaml:"projectID"`
	CredentialsFile string `yaml:"credentialsFile"`
}

// StaticConfig contains paths to the GTFS static reference tables.
type StaticConfig struct {
	StopsPath  string `yaml:"stopsPath" validate:"required"`
	RoutesPath string `yaml:"routesPath" validate:"required"`
}

// Config is the root configuration structure.
type Config struct {
	// Feeds maps a feed group to its realtime endpoint URL. Keys must come
	// from the closed FeedGroup set; values default to the MTA endpoints.
	Feeds map[FeedGroup]string `yaml:"feeds"`

	APIKey    string          `yaml:"apiKey"`
	Static    StaticConfig    `yaml:"static" validate:"required"`
	Firestore FirestoreConfig `yaml:"firestore"`

	// TimeoutMS bounds each feed fetch. Defaults to 30000.
	TimeoutMS int `yaml:"timeoutMS" validate:"gte=0"`
}

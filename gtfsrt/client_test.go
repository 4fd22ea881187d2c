package gtfsrt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func marshalFeed(t *testing.T, fm *gtfsrtpb.FeedMessage) []byte {
	t.Helper()
	b, err := proto.Marshal(fm)
	require.NoError(t, err)
	return b
}

func sampleFeed() *gtfsrtpb.FeedMessage {
	return &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(1700000000),
		},
		Entity: []*gtfsrtpb.FeedEntity{
			{
				Id: proto.String("1"),
				TripUpdate: &gtfsrtpb.TripUpdate{
					Trip: &gtfsrtpb.TripDescriptor{
						TripId:  proto.String("trip-1"),
						RouteId: proto.String("1"),
					},
				},
			},
		},
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	payload := marshalFeed(t, sampleFeed())

	fm, err := Decode(payload)
	require.NoError(t, err)

	assert.Equal(t, uint64(1700000000), fm.GetHeader().GetTimestamp())
	require.Len(t, fm.Entity, 1)
	assert.Equal(t, "trip-1", fm.Entity[0].GetTripUpdate().GetTrip().GetTripId())
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte("definitely not a protobuf"))
	assert.Error(t, err)
}

func TestFetchSuccess(t *testing.T) {
	payload := marshalFeed(t, sampleFeed())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	client := NewClient("", time.Second)
	b, err := client.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, payload, b)
}

func TestFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient("", time.Second)
	_, err := client.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}

func TestFetchTransportError(t *testing.T) {
	client := NewClient("", 100*time.Millisecond)
	_, err := client.Fetch(context.Background(), "http://127.0.0.1:1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}

func TestFetchSendsAPIKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
	}))
	defer srv.Close()

	client := NewClient("secret", time.Second)
	_, err := client.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "secret", gotKey)
}

func TestFetchOmitsEmptyAPIKey(t *testing.T) {
	var hasHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasHeader = r.Header["X-Api-Key"]
	}))
	defer srv.Close()

	client := NewClient("", time.Second)
	_, err := client.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.False(t, hasHeader)
}

func TestFetchMessageDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("garbage bytes that are not a feed"))
	}))
	defer srv.Close()

	client := NewClient("", time.Second)
	_, err := client.FetchMessage(context.Background(), srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}

package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootTally_Go/internal/actor"
	"github.com/osse101/LootTally_Go/internal/catalog"
	"github.com/osse101/LootTally_Go/internal/classify"
	"github.com/osse101/LootTally_Go/internal/dedupe"
	"github.com/osse101/LootTally_Go/internal/event"
	"github.com/osse101/LootTally_Go/internal/roll"
	"github.com/osse101/LootTally_Go/internal/tracker"
)

// newTestStack wires a real tracking stack over a temp-file catalog.
func newTestStack(t *testing.T) (tracker.Service, *catalog.Resolver, *actor.State) {
	t.Helper()

	itemPath := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(itemPath, []byte(`{
		"version": "1.0",
		"items": [
			{"id": 1, "icon": 10, "rarity": 1, "name": "Gil"},
			{"id": 3, "icon": 30, "rarity": 2, "name": "Mythril Ore"},
			{"id": 42, "icon": 420, "rarity": 2, "name": "Demon Boots"}
		]
	}`), 0o644))

	lookup, err := catalog.NewFileCatalog(itemPath, "")
	require.NoError(t, err)

	resolver := catalog.NewResolver(lookup, 16, time.Minute)

	state := actor.NewState()
	state.Set(actor.Info{Name: "Astrid Vane", ContentID: 9001, ZoneID: 128, ZoneName: "Limsa Lominsa"})

	svc := tracker.NewService(
		classify.NewClassifier(resolver, state),
		dedupe.NewWindow(500*time.Millisecond, 3*time.Second),
		roll.NewTracker(),
		event.NewMemoryBus(),
		100,
	)
	return svc, resolver, state
}

func postJSON(t *testing.T, h http.HandlerFunc, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleIngestLine(t *testing.T) {
	svc, _, _ := newTestStack(t)
	h := HandleIngestLine(svc)

	rec := postJSON(t, h, "/api/v1/lines", IngestLineRequest{Line: "You obtain a Mythril Ore."})
	assert.Equal(t, http.StatusAccepted, rec.Code)

	events := svc.RecentEvents()
	require.Len(t, events, 1)
	assert.Equal(t, uint32(3), events[0].ItemID)
}

func TestHandleIngestLineWithItemRef(t *testing.T) {
	svc, _, _ := newTestStack(t)
	h := HandleIngestLine(svc)

	rec := postJSON(t, h, "/api/v1/lines", IngestLineRequest{
		Line:     "You obtain a mythril chunk.",
		ItemID:   3,
		ItemName: "mythril chunk",
	})
	assert.Equal(t, http.StatusAccepted, rec.Code)

	events := svc.RecentEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "Mythril Ore", events[0].ItemName, "structured reference wins over text")
}

func TestHandleIngestLineRejectsEmptyLine(t *testing.T) {
	svc, _, _ := newTestStack(t)
	h := HandleIngestLine(svc)

	rec := postJSON(t, h, "/api/v1/lines", IngestLineRequest{Line: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleIngestLineRejectsMalformedBody(t *testing.T) {
	svc, _, _ := newTestStack(t)
	h := HandleIngestLine(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lines", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetEvents(t *testing.T) {
	svc, _, _ := newTestStack(t)

	postJSON(t, HandleIngestLine(svc), "/api/v1/lines", IngestLineRequest{Line: "You obtain 2 Mythril Ore."})
	postJSON(t, HandleIngestLine(svc), "/api/v1/lines", IngestLineRequest{Line: "You obtain 3 Mythril Ore."})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?limit=1", nil)
	rec := httptest.NewRecorder()
	HandleGetEvents(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []struct {
			Quantity uint32 `json:"quantity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, uint32(3), resp.Data[0].Quantity, "newest first")
}

func TestHandleGetEventsInvalidLimit(t *testing.T) {
	svc, _, _ := newTestStack(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?limit=bogus", nil)
	rec := httptest.NewRecorder()
	HandleGetEvents(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleClearEvents(t *testing.T) {
	svc, _, _ := newTestStack(t)
	postJSON(t, HandleIngestLine(svc), "/api/v1/lines", IngestLineRequest{Line: "You obtain a Mythril Ore."})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/events", nil)
	rec := httptest.NewRecorder()
	HandleClearEvents(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Empty(t, svc.RecentEvents())
}

func TestHandleGetRolls(t *testing.T) {
	svc, _, _ := newTestStack(t)
	ingest := HandleIngestLine(svc)

	postJSON(t, ingest, "/api/v1/lines", IngestLineRequest{Line: "A Demon Boots has been added to the loot list."})
	postJSON(t, ingest, "/api/v1/lines", IngestLineRequest{Line: "You roll Need on the Demon Boots. 87!"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rolls", nil)
	rec := httptest.NewRecorder()
	HandleGetRolls(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []RollSessionView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Demon Boots", resp.Data[0].ItemName)
	assert.True(t, resp.Data[0].Open)
	require.Len(t, resp.Data[0].Rolls, 1)
	assert.Equal(t, "Astrid Vane", resp.Data[0].Rolls[0].Player)
	assert.Equal(t, 87, resp.Data[0].Rolls[0].Value)
}

func TestHandleClearRolls(t *testing.T) {
	svc, _, _ := newTestStack(t)
	ingest := HandleIngestLine(svc)

	postJSON(t, ingest, "/api/v1/lines", IngestLineRequest{Line: "A Demon Boots has been added to the loot list."})
	postJSON(t, ingest, "/api/v1/lines", IngestLineRequest{Line: "You roll Need on the Demon Boots. 87!"})
	postJSON(t, ingest, "/api/v1/lines", IngestLineRequest{Line: "You obtain a Demon Boots."})

	rec := httptest.NewRecorder()
	HandleClearCompletedRolls(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/rolls/completed", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)

	rec = httptest.NewRecorder()
	HandleClearAllRolls(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/rolls", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.RollSessions())
}

func TestHandleActorLifecycle(t *testing.T) {
	state := actor.NewState()

	rec := postJSON(t, HandleSetActor(state), "/api/v1/actor", SetActorRequest{
		Name:      "Astrid Vane",
		ContentID: 9001,
		ZoneID:    128,
		ZoneName:  "Limsa Lominsa",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	HandleGetActor(state).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/actor", nil))

	var resp ActorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Active)
	assert.Equal(t, "Astrid Vane", resp.Name)

	rec = httptest.NewRecorder()
	HandleClearActor(state).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/actor", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	_, ok := state.Info()
	assert.False(t, ok)
}

func TestHandleSetActorRequiresName(t *testing.T) {
	state := actor.NewState()

	rec := postJSON(t, HandleSetActor(state), "/api/v1/actor", SetActorRequest{Name: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleResolveItem(t *testing.T) {
	_, resolver, _ := newTestStack(t)
	h := HandleResolveItem(resolver)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items/resolve?name=mythril+ores", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ResolvedItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint32(3), resp.Item.ID)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items/resolve?id=1000003", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint32(3), resp.Item.ID)
	assert.True(t, resp.HighQuality)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items/resolve?name=no+such+item", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items/resolve", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHandleReadyz(t *testing.T) {
	_, resolver, _ := newTestStack(t)

	rec := httptest.NewRecorder()
	HandleReadyz(resolver).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	HandleReadyz(catalog.NewResolver(nil, 0, 0)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleVersion(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleVersion().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp VersionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.GoVersion)
}

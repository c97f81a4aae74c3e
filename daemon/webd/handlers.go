package webd

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/paulmach/orb"

	"github.com/rotblauer/catwalk/common"
	"github.com/rotblauer/catwalk/geo/geodesy"
	"github.com/rotblauer/catwalk/ors"
	"github.com/rotblauer/catwalk/params"
	"github.com/rotblauer/catwalk/synth"
	"github.com/rotblauer/catwalk/types/gpxfile"
	"github.com/rotblauer/catwalk/types/track"
)

func pingPong(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

type GenerateRequest struct {
	StartCoords struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"startCoords"`
	RouteLength int    `json:"routeLength"`
	RouteType   string `json:"routeType"`
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	Ele float64 `json:"ele"`
}

type GenerateResponse struct {
	Timestamps  []time.Time  `json:"timestamps"`
	BPMProfile  []int        `json:"bpmProfile"`
	PaceProfile []float64    `json:"paceProfile"`
	Route       []Coordinate `json:"route"`
}

// handleGenerate fetches a round trip, synthesizes an activity, and answers
// with the aligned profile series as JSON.
func (s *WebDaemon) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, key, ok := s.decodeGenerateRequest(w, r, "json")
	if !ok {
		return
	}
	if s.serveCached(w, key) {
		return
	}

	t, err := s.generate(r, req)
	if err != nil {
		s.logger.Error("Generate failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	body, err := json.Marshal(buildGenerateResponse(t))
	if err != nil {
		s.logger.Error("Failed to marshal response", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "encoding failed")
		return
	}
	s.writeResult(w, key, cachedResult{contentType: "application/json", body: body})
}

// handleGenerateGPX is handleGenerate with a GPX document response.
func (s *WebDaemon) handleGenerateGPX(w http.ResponseWriter, r *http.Request) {
	req, key, ok := s.decodeGenerateRequest(w, r, "gpx")
	if !ok {
		return
	}
	if s.serveCached(w, key) {
		return
	}

	t, err := s.generate(r, req)
	if err != nil {
		s.logger.Error("Generate failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	doc := gpxfile.FromTrack(t, gpxfile.TrackOptions{
		ActivityType: activityType(req.RouteType),
		WithCadence:  s.Config.SynthConfig.WithCadence,
	})
	body, err := doc.Marshal()
	if err != nil {
		s.logger.Error("Failed to marshal GPX", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "encoding failed")
		return
	}
	s.writeResult(w, key, cachedResult{contentType: "application/gpx+xml", body: body})
}

func (s *WebDaemon) decodeGenerateRequest(w http.ResponseWriter, r *http.Request, format string) (GenerateRequest, uint64, bool) {
	var req GenerateRequest
	if r.Body == nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request")
		return req, 0, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warn("Bad generate request", "error", err)
		writeJSONError(w, http.StatusBadRequest, "Invalid request")
		return req, 0, false
	}

	key, err := hashstructure.Hash(struct {
		Req    GenerateRequest
		Format string
	}{req, format}, hashstructure.FormatV2, nil)
	if err != nil {
		// Unhashable requests just skip the result cache.
		key = 0
	}
	return req, key, true
}

func (s *WebDaemon) serveCached(w http.ResponseWriter, key uint64) bool {
	if key == 0 {
		return false
	}
	res, ok := s.results.Get(key)
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", res.contentType)
	_, _ = w.Write(res.body)
	return true
}

func (s *WebDaemon) writeResult(w http.ResponseWriter, key uint64, res cachedResult) {
	if key != 0 {
		s.results.Add(key, res)
	}
	w.Header().Set("Content-Type", res.contentType)
	_, _ = w.Write(res.body)
}

func (s *WebDaemon) generate(r *http.Request, req GenerateRequest) (track.Track, error) {
	profile := req.RouteType
	if profile == "" {
		profile = params.RouteProfileFootWalking
	}

	waypoints, err := s.routes.RoundTrip(r.Context(), ors.RoundTripParams{
		Start:   orb.Point{req.StartCoords.Lon, req.StartCoords.Lat},
		Length:  req.RouteLength,
		Profile: profile,
	})
	if err != nil {
		return nil, err
	}

	cfg := s.Config.SynthConfig
	cfg.RouteLength = float64(req.RouteLength)
	if profile == params.RouteProfileCyclingRoad {
		cfg.AvgSpeed = common.SpeedOfCyclingMean
	}
	return synth.Synthesize(cfg, waypoints, nil)
}

func buildGenerateResponse(t track.Track) GenerateResponse {
	resp := GenerateResponse{
		Timestamps:  make([]time.Time, len(t)),
		BPMProfile:  make([]int, len(t)),
		PaceProfile: make([]float64, len(t)),
		Route:       make([]Coordinate, len(t)),
	}
	for i, tp := range t {
		resp.Timestamps[i] = tp.Time
		resp.BPMProfile[i] = tp.HR
		resp.Route[i] = Coordinate{Lat: tp.Point.Lat(), Lon: tp.Point.Lon(), Ele: tp.Ele}

		// Positions are one second apart, so the leg distance is the
		// second's speed in m/s.
		speed := 0.0
		switch {
		case i > 0:
			speed = geodesy.Distance(t[i-1].Point, tp.Point)
		case len(t) > 1:
			speed = geodesy.Distance(tp.Point, t[1].Point)
		}
		if speed <= 0 {
			resp.PaceProfile[i] = 999.0
		} else {
			resp.PaceProfile[i] = common.SpeedToPace(speed)
		}
	}
	return resp
}

func activityType(routeProfile string) string {
	switch routeProfile {
	case params.RouteProfileCyclingRoad:
		return "cycling-road"
	default:
		return "foot_walking"
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// Package gpxfile is the wire-format layer: it decodes route waypoints from
// GPX documents and encodes synthesized tracks as Garmin-flavored GPX 1.1,
// the dialect fitness-platform importers expect.
package gpxfile

import (
	"encoding/xml"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/rotblauer/catwalk/types/track"
)

const (
	xmlnsGPX = "http://www.topografix.com/GPX/1/1"
	xmlnsXsi = "http://www.w3.org/2001/XMLSchema-instance"
	xmlnsNs2 = "http://www.garmin.com/xmlschemas/GpxExtensions/v3"
	xmlnsNs3 = "http://www.garmin.com/xmlschemas/TrackPointExtension/v1"

	schemaLocation = "http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd " +
		"http://www.garmin.com/xmlschemas/GpxExtensions/v3 http://www.garmin.com/xmlschemas/GpxExtensionsv3.xsd " +
		"http://www.garmin.com/xmlschemas/TrackPointExtension/v1 http://www.garmin.com/xmlschemas/TrackPointExtensionv1.xsd"

	// timeLayout is RFC3339 pinned to UTC with a literal Z, which is what
	// the importers' parsers actually accept.
	timeLayout = "2006-01-02T15:04:05Z"
)

// ErrNoUsableWaypoints reports a document from which no waypoint survived
// parsing and filtering.
var ErrNoUsableWaypoints = errors.New("gpx: no usable waypoints")

// Elevation marshals with exactly one decimal place.
type Elevation float64

func (e Elevation) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return enc.EncodeElement(strconv.FormatFloat(float64(e), 'f', 1, 64), start)
}

type GPX struct {
	XMLName           xml.Name `xml:"gpx"`
	Version           string   `xml:"version,attr"`
	Creator           string   `xml:"creator,attr"`
	Xmlns             string   `xml:"xmlns,attr"`
	XmlnsXsi          string   `xml:"xmlns:xsi,attr"`
	XmlnsNs3          string   `xml:"xmlns:ns3,attr"`
	XmlnsNs2          string   `xml:"xmlns:ns2,attr"`
	XsiSchemaLocation string   `xml:"xsi:schemaLocation,attr"`
	Metadata          Metadata `xml:"metadata"`
	Trk               Trk      `xml:"trk"`
}

type Metadata struct {
	Link Link   `xml:"link"`
	Time string `xml:"time"`
}

type Link struct {
	Href string `xml:"href,attr"`
	Text string `xml:"text"`
}

type Trk struct {
	Name   string `xml:"name"`
	Type   string `xml:"type"`
	Trkseg Trkseg `xml:"trkseg"`
}

type Trkseg struct {
	Trkpts []Trkpt `xml:"trkpt"`
}

type Trkpt struct {
	Lat        float64     `xml:"lat,attr"`
	Lon        float64     `xml:"lon,attr"`
	Ele        Elevation   `xml:"ele"`
	Time       string      `xml:"time"`
	Extensions *Extensions `xml:"extensions,omitempty"`
}

type Extensions struct {
	TPE *TrackPointExtension `xml:"ns3:TrackPointExtension"`
}

type TrackPointExtension struct {
	HR  int  `xml:"ns3:hr"`
	Cad *int `xml:"ns3:cad,omitempty"`
}

// TrackOptions names the output document. Zero values get the defaults the
// importers are used to seeing.
type TrackOptions struct {
	Creator      string
	Name         string
	ActivityType string
	WithCadence  bool
}

func (o TrackOptions) withDefaults() TrackOptions {
	if o.Creator == "" {
		o.Creator = "Garmin Connect"
	}
	if o.Name == "" {
		o.Name = "Generated Route"
	}
	if o.ActivityType == "" {
		o.ActivityType = "foot_walking"
	}
	return o
}

// FromTrack builds the one-track, one-segment GPX document for a synthesized
// activity. The metadata creation time equals the first point's timestamp.
func FromTrack(t track.Track, opts TrackOptions) *GPX {
	opts = opts.withDefaults()

	doc := &GPX{
		Version:           "1.1",
		Creator:           opts.Creator,
		Xmlns:             xmlnsGPX,
		XmlnsXsi:          xmlnsXsi,
		XmlnsNs3:          xmlnsNs3,
		XmlnsNs2:          xmlnsNs2,
		XsiSchemaLocation: schemaLocation,
		Metadata: Metadata{
			Link: Link{Href: "connect.garmin.com", Text: "Garmin Connect"},
		},
		Trk: Trk{
			Name: opts.Name,
			Type: opts.ActivityType,
		},
	}
	if len(t) > 0 {
		doc.Metadata.Time = t[0].Time.UTC().Format(timeLayout)
	}

	pts := make([]Trkpt, len(t))
	for i, tp := range t {
		ext := &TrackPointExtension{HR: tp.HR}
		if opts.WithCadence {
			cad := tp.Cad
			ext.Cad = &cad
		}
		pts[i] = Trkpt{
			Lat:        tp.Point.Lat(),
			Lon:        tp.Point.Lon(),
			Ele:        Elevation(tp.Ele),
			Time:       tp.Time.UTC().Format(timeLayout),
			Extensions: &Extensions{TPE: ext},
		}
	}
	doc.Trk.Trkseg.Trkpts = pts
	return doc
}

// Marshal renders the document with an XML declaration, indented.
func (g *GPX) Marshal() ([]byte, error) {
	body, err := xml.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// FirstTime returns the metadata creation timestamp, if parseable.
func (g *GPX) FirstTime() (time.Time, error) {
	return time.Parse(timeLayout, g.Metadata.Time)
}

// parseDoc reads points permissively: coordinates come in as strings so a
// malformed entry can be skipped instead of failing the whole document.
type parseDoc struct {
	XMLName xml.Name   `xml:"gpx"`
	Rte     struct {
		Pts []parsePt `xml:"rtept"`
	} `xml:"rte"`
	Trk struct {
		Trkseg struct {
			Pts []parsePt `xml:"trkpt"`
		} `xml:"trkseg"`
	} `xml:"trk"`
}

type parsePt struct {
	Lat string `xml:"lat,attr"`
	Lon string `xml:"lon,attr"`
	Ele string `xml:"ele"`
}

// ParseRoute extracts ordered waypoints from a GPX document, reading route
// points (rtept) or, failing that, track points (trkpt). Entries with
// non-numeric or out-of-range fields are skipped with a diagnostic; the
// parse fails only if nothing usable remains.
func ParseRoute(data []byte) ([]track.Waypoint, error) {
	var doc parseDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	pts := doc.Rte.Pts
	if len(pts) == 0 {
		pts = doc.Trk.Trkseg.Pts
	}

	waypoints := make([]track.Waypoint, 0, len(pts))
	for _, pt := range pts {
		ele := pt.Ele
		if ele == "" {
			ele = "0"
		}
		lat, err1 := strconv.ParseFloat(pt.Lat, 64)
		lon, err2 := strconv.ParseFloat(pt.Lon, 64)
		eleV, err3 := strconv.ParseFloat(ele, 64)
		if err1 != nil || err2 != nil || err3 != nil {
			slog.Warn("Skipping malformed waypoint", "lat", pt.Lat, "lon", pt.Lon, "ele", pt.Ele)
			continue
		}
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			slog.Warn("Skipping out-of-range waypoint", "lat", lat, "lon", lon)
			continue
		}
		waypoints = append(waypoints, track.NewWaypoint(lat, lon, eleV))
	}
	if len(waypoints) == 0 {
		return nil, ErrNoUsableWaypoints
	}
	return waypoints, nil
}

// Package ingest loads vertices and edges from external sources into a
// graphstore.Store, and provides a cached lookup wrapper for read-heavy
// serving.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pajaro5/roadgraph/graphstore"
	"github.com/pajaro5/roadgraph/payload/roadseg"
)

// CSVVertex is one row of the vertex CSV: external_id,lat,lon.
type CSVVertex struct {
	ExternalID string
	Lat        float32
	Lon        float32
}

// CSVEdge is one row of the edge CSV: from_id,to_id,length_m,speed_kph,one_way,class.
type CSVEdge struct {
	FromID        string
	ToID          string
	LengthM       float32
	SpeedLimitKPH float32
	OneWay        bool
	Class         roadseg.Class
}

// LoadCSV reads vertices then edges from the two readers and populates
// store, remapping the external string ids used in the CSVs to the
// store's own VertexIDs. It returns that remapping so callers can look up
// vertices by their original identifiers.
//
// The vertex reader's header row (if any) must be skipped by the caller;
// LoadCSV treats every row as data.
func LoadCSV(ctx context.Context, store *graphstore.Store, vertices, edges io.Reader) (map[string]graphstore.VertexID, error) {
	_, span := otel.Tracer("ingest").Start(ctx, "ingest.load_csv")
	defer span.End()
	start := time.Now()

	ids, err := loadVertices(store, vertices)
	if err != nil {
		return nil, fmt.Errorf("load vertices: %w", err)
	}

	edgeCount, err := loadEdges(store, edges, ids)
	if err != nil {
		return nil, fmt.Errorf("load edges: %w", err)
	}

	span.SetAttributes(
		attribute.Int("roadgraph.vertex_count", len(ids)),
		attribute.Int("roadgraph.edge_count", edgeCount),
		attribute.Int64("roadgraph.elapsed_ms", time.Since(start).Milliseconds()),
	)

	return ids, nil
}

func loadVertices(store *graphstore.Store, r io.Reader) (map[string]graphstore.VertexID, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	ids := make(map[string]graphstore.VertexID)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		lat, err := strconv.ParseFloat(record[1], 32)
		if err != nil {
			return nil, fmt.Errorf("parse lat %q: %w", record[1], err)
		}
		lon, err := strconv.ParseFloat(record[2], 32)
		if err != nil {
			return nil, fmt.Errorf("parse lon %q: %w", record[2], err)
		}

		ids[record[0]] = store.AddVertex(float32(lat), float32(lon))
	}

	return ids, nil
}

func loadEdges(store *graphstore.Store, r io.Reader, ids map[string]graphstore.VertexID) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 6

	count := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}

		from, ok := ids[record[0]]
		if !ok {
			return count, fmt.Errorf("edge references unknown vertex id %q", record[0])
		}
		to, ok := ids[record[1]]
		if !ok {
			return count, fmt.Errorf("edge references unknown vertex id %q", record[1])
		}

		length, err := strconv.ParseFloat(record[2], 32)
		if err != nil {
			return count, fmt.Errorf("parse length_m %q: %w", record[2], err)
		}
		speed, err := strconv.ParseFloat(record[3], 32)
		if err != nil {
			return count, fmt.Errorf("parse speed_kph %q: %w", record[3], err)
		}
		oneWay, err := strconv.ParseBool(record[4])
		if err != nil {
			return count, fmt.Errorf("parse one_way %q: %w", record[4], err)
		}
		class, err := strconv.Atoi(record[5])
		if err != nil {
			return count, fmt.Errorf("parse class %q: %w", record[5], err)
		}

		seg := roadseg.New(float32(length), float32(speed), oneWay, roadseg.Class(class))
		if err := store.AddEdge(from, to, seg, roadseg.ClassOverlap{}); err != nil {
			return count, fmt.Errorf("add edge %s->%s: %w", record[0], record[1], err)
		}
		count++
	}

	return count, nil
}

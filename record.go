/**
 * Filename: record.go
 * Path: github.com/glennhickey/contigSim
 *
 * Copyright (c) 2024 Glenn Hickey
 */

package contigsim

import (
	"bytes"
	"encoding/gob"
)

// Record is the minimal per-replicate result the core hands to external
// collaborators (aggregation, plotting, persistence). Histograms are keyed
// by the seven standard filter categories from §6.
type Record struct {
	All           map[int]int
	Dead          map[int]int
	Alive         map[int]int
	AliveLinear   map[int]int
	AliveCircular map[int]int
	DeadLinear    map[int]int
	DeadCircular  map[int]int

	LLCount     int
	FGCount     int
	FLCount     int
	LDLossCount int
	LDSwapCount int
	DDGainCount int
	DDSwapCount int
}

// NewRecord snapshots the pool's histograms and the model's event
// counters after a call to Simulate.
func NewRecord(m *Model, binSize int) Record {
	pool := m.Pool()
	return Record{
		All:           pool.Histogram(binSize, FilterAll),
		Dead:          pool.Histogram(binSize, FilterDead),
		Alive:         pool.Histogram(binSize, FilterAlive),
		AliveLinear:   pool.Histogram(binSize, FilterAliveLinear),
		AliveCircular: pool.Histogram(binSize, FilterAliveCircular),
		DeadLinear:    pool.Histogram(binSize, FilterDeadLinear),
		DeadCircular:  pool.Histogram(binSize, FilterDeadCircular),

		LLCount:     m.LLCount(),
		FGCount:     m.FGCount(),
		FLCount:     m.FLCount(),
		LDLossCount: m.LDLossCount(),
		LDSwapCount: m.LDSwapCount(),
		DDGainCount: m.DDGainCount(),
		DDSwapCount: m.DDSwapCount(),
	}
}

// Encode serializes the record with encoding/gob, a schema-stable binary
// encoding — the core does not mandate a persistence format, only that it
// round-trips this struct.
func (r Record) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeRecord is the inverse of Encode.
func DecodeRecord(data []byte) (Record, error) {
	var r Record
	err := gob.NewDecoder(bytes.NewReader(data)).Decode(&r)
	return r, err
}

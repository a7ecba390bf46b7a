package main

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/coregx/simdint"
)

// fieldStats accumulates the values seen in one column.
type fieldStats struct {
	Count uint64
	Min   uint32
	Max   uint32
	Sum   uint64
}

func (s *fieldStats) add(v uint32) {
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if v > s.Max {
		s.Max = v
	}
	s.Count++
	s.Sum += uint64(v)
}

// recordSummary is the result of scanning a records file.
type recordSummary struct {
	Records int
	Skipped int
	Fields  []fieldStats
}

// summarize parses every record of data and accumulates per-column
// statistics. Malformed records are logged and skipped; scanning resumes
// after the next eol byte.
func summarize(p *simdint.Parser, cfg recordConfig, data []byte, log zerolog.Logger) recordSummary {
	var sum recordSummary
	fields := make([]uint32, 0, 16)

	for line := 1; len(data) > 0; line++ {
		var n int
		var err error
		fields, n, err = p.ParseRecord(fields[:0], data, cfg.Separator, cfg.EOL)
		if err != nil {
			var ferr *simdint.FieldError
			ev := log.Warn().Int("line", line)
			if errors.As(err, &ferr) {
				ev = ev.Int("field", ferr.Field).Int("offset", ferr.Offset)
			}
			ev.Err(err).Msg("skipping malformed record")
			sum.Skipped++

			next := simdint.IndexTerminator(data, cfg.EOL, cfg.EOL)
			data = data[min(next+1, len(data)):]
			continue
		}

		for i, v := range fields {
			if i == len(sum.Fields) {
				sum.Fields = append(sum.Fields, fieldStats{})
			}
			sum.Fields[i].add(v)
		}
		sum.Records++
		data = data[n:]
	}
	return sum
}

// mean returns the average value of the column, or NaN if it is empty.
func (s *fieldStats) mean() float64 {
	if s.Count == 0 {
		return math.NaN()
	}
	return float64(s.Sum) / float64(s.Count)
}

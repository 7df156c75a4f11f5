// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package deque

import (
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"github.com/juju/schema"
	"gopkg.in/juju/environschema.v1"
)

const (
	// DefaultCapacityBound is the number of elements a deque holds when no
	// other bound is configured.
	DefaultCapacityBound = 1000

	// DefaultSegmentCapacity is the number of slots in each block when no
	// other size is configured.
	DefaultSegmentCapacity = 5
)

const (
	// CapacityBoundKey is the attribute name of the capacity bound.
	CapacityBoundKey = "capacity-bound"

	// SegmentCapacityKey is the attribute name of the segment capacity.
	SegmentCapacityKey = "segment-capacity"
)

var logger = loggo.GetLogger("juju.blockdeque")

// Logger is the logging interface used by a Deque.
type Logger interface {
	Debugf(message string, args ...any)
	Tracef(message string, args ...any)
}

// Config holds the per-instance settings of a Deque. Both values are fixed
// for the lifetime of the deque built from it.
type Config struct {
	// CapacityBound is the maximum number of elements held at once.
	// Zero is valid and yields a deque that rejects every insertion.
	CapacityBound int

	// SegmentCapacity is the number of slots in every block.
	SegmentCapacity int

	// Logger is used to report block allocation and rejected insertions.
	// When nil the package logger is used.
	Logger Logger
}

// DefaultConfig returns a Config holding the default bound and segment size.
func DefaultConfig() Config {
	return Config{
		CapacityBound:   DefaultCapacityBound,
		SegmentCapacity: DefaultSegmentCapacity,
	}
}

// Validate returns an error if the config cannot be used to build a Deque.
func (c Config) Validate() error {
	if c.CapacityBound < 0 {
		return errors.NotValidf("negative capacity bound %d", c.CapacityBound)
	}
	if c.SegmentCapacity < 1 {
		return errors.NotValidf("segment capacity %d", c.SegmentCapacity)
	}
	return nil
}

func (c Config) logger() Logger {
	if c.Logger == nil {
		return logger
	}
	return c.Logger
}

var configSchema = environschema.Fields{
	CapacityBoundKey: {
		Description: "The maximum number of elements the deque may hold.",
		Type:        environschema.Tint,
	},
	SegmentCapacityKey: {
		Description: "The number of element slots in each block.",
		Type:        environschema.Tint,
	},
}

var configFields = func() schema.Fields {
	fs, _, err := configSchema.ValidationSchema()
	if err != nil {
		panic(err)
	}
	return fs
}()

var configDefaults = schema.Defaults{
	CapacityBoundKey:   DefaultCapacityBound,
	SegmentCapacityKey: DefaultSegmentCapacity,
}

// ConfigSchema returns the attribute schema understood by ConfigFromAttrs.
func ConfigSchema() environschema.Fields {
	return configSchema
}

// ConfigFromAttrs builds a Config from an attribute map, such as a decoded
// YAML document. Missing attributes take their default values and unknown
// attributes are ignored.
func ConfigFromAttrs(attrs map[string]interface{}) (Config, error) {
	coerced, err := schema.FieldMap(configFields, configDefaults).Coerce(attrs, nil)
	if err != nil {
		return Config{}, errors.NewNotValid(err, "deque config")
	}
	valid := coerced.(map[string]interface{})
	cfg := Config{
		CapacityBound:   intAttr(valid[CapacityBoundKey]),
		SegmentCapacity: intAttr(valid[SegmentCapacityKey]),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Trace(err)
	}
	return cfg, nil
}

func intAttr(v interface{}) int {
	switch v := v.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

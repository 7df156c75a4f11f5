// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package deque_test

import (
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/blockdeque/deque"
)

type configSuite struct{}

var _ = gc.Suite(&configSuite{})

func (s *configSuite) TestDefaultConfig(c *gc.C) {
	cfg := deque.DefaultConfig()
	c.Check(cfg.CapacityBound, gc.Equals, 1000)
	c.Check(cfg.SegmentCapacity, gc.Equals, 5)
	c.Check(cfg.Validate(), jc.ErrorIsNil)
}

func (s *configSuite) TestValidate(c *gc.C) {
	for i, test := range []struct {
		cfg deque.Config
		err string
	}{{
		cfg: deque.Config{CapacityBound: 0, SegmentCapacity: 1},
	}, {
		cfg: deque.Config{CapacityBound: -1, SegmentCapacity: 5},
		err: "negative capacity bound -1 not valid",
	}, {
		cfg: deque.Config{CapacityBound: 10, SegmentCapacity: 0},
		err: "segment capacity 0 not valid",
	}} {
		c.Logf("test %d", i)
		err := test.cfg.Validate()
		if test.err == "" {
			c.Check(err, jc.ErrorIsNil)
			continue
		}
		c.Check(err, jc.ErrorIs, errors.NotValid)
		c.Check(err, gc.ErrorMatches, test.err)
	}
}

func (s *configSuite) TestConfigFromAttrsDefaults(c *gc.C) {
	cfg, err := deque.ConfigFromAttrs(map[string]interface{}{})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cfg.CapacityBound, gc.Equals, deque.DefaultCapacityBound)
	c.Check(cfg.SegmentCapacity, gc.Equals, deque.DefaultSegmentCapacity)
}

func (s *configSuite) TestConfigFromAttrs(c *gc.C) {
	cfg, err := deque.ConfigFromAttrs(map[string]interface{}{
		deque.CapacityBoundKey:   10,
		deque.SegmentCapacityKey: int64(2),
		"unrelated":              true,
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(cfg.CapacityBound, gc.Equals, 10)
	c.Check(cfg.SegmentCapacity, gc.Equals, 2)

	d, err := deque.New[int](cfg)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(d.CapacityBound(), gc.Equals, 10)
	c.Check(d.SegmentCapacity(), gc.Equals, 2)
}

func (s *configSuite) TestConfigFromAttrsInvalid(c *gc.C) {
	_, err := deque.ConfigFromAttrs(map[string]interface{}{
		deque.SegmentCapacityKey: "lots",
	})
	c.Check(err, jc.ErrorIs, errors.NotValid)

	_, err = deque.ConfigFromAttrs(map[string]interface{}{
		deque.SegmentCapacityKey: 0,
	})
	c.Check(err, jc.ErrorIs, errors.NotValid)

	_, err = deque.ConfigFromAttrs(map[string]interface{}{
		deque.CapacityBoundKey: -5,
	})
	c.Check(err, jc.ErrorIs, errors.NotValid)
}

func (s *configSuite) TestConfigSchema(c *gc.C) {
	fields := deque.ConfigSchema()
	c.Check(fields, gc.HasLen, 2)
	c.Check(fields[deque.CapacityBoundKey].Description, gc.Not(gc.Equals), "")
	c.Check(fields[deque.SegmentCapacityKey].Description, gc.Not(gc.Equals), "")
}

type recordingLogger struct {
	traces []string
	debugs []string
}

func (l *recordingLogger) Debugf(message string, args ...any) {
	l.debugs = append(l.debugs, message)
}

func (l *recordingLogger) Tracef(message string, args ...any) {
	l.traces = append(l.traces, message)
}

func (s *configSuite) TestLogger(c *gc.C) {
	log := &recordingLogger{}
	d, err := deque.New[int](deque.Config{
		CapacityBound:   1,
		SegmentCapacity: 2,
		Logger:          log,
	})
	c.Assert(err, jc.ErrorIsNil)

	c.Assert(d.AddLast(1), jc.ErrorIsNil)
	c.Check(d.AddLast(2), jc.ErrorIs, deque.CapacityExceeded)
	_, ok := d.PollFirst()
	c.Assert(ok, jc.IsTrue)

	c.Check(log.traces, jc.DeepEquals, []string{
		"allocated tail block %d",
		"retired block %d",
	})
	c.Check(log.debugs, gc.HasLen, 1)
}

func (s *configSuite) TestPackageLogger(c *gc.C) {
	c.Check(loggo.GetLogger("juju.blockdeque").Name(), gc.Equals, "juju.blockdeque")
	d, err := deque.New[int](deque.Config{CapacityBound: 3, SegmentCapacity: 1})
	c.Assert(err, jc.ErrorIsNil)
	_, err = d.AddAll(1, 2, 3)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(d.BlockCount(), gc.Equals, 3)
}

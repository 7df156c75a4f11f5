// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package dequetest_test

import (
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/blockdeque/deque"
	"github.com/juju/blockdeque/deque/dequetest"
)

type modelSuite struct{}

var _ = gc.Suite(&modelSuite{})

func (s *modelSuite) TestBound(c *gc.C) {
	m := dequetest.NewModel[int](2)
	c.Check(m.AddLast(1), jc.IsTrue)
	c.Check(m.AddFirst(0), jc.IsTrue)
	c.Check(m.AddLast(2), jc.IsFalse)
	c.Check(m.AddFirst(2), jc.IsFalse)
	c.Check(m.Slice(), jc.DeepEquals, []int{0, 1})
}

func (s *modelSuite) TestPoll(c *gc.C) {
	m := dequetest.NewModel[int](5)
	_, ok := m.PollFirst()
	c.Check(ok, jc.IsFalse)
	_, ok = m.PollLast()
	c.Check(ok, jc.IsFalse)

	m.AddLast(1)
	m.AddLast(2)
	m.AddLast(3)
	e, ok := m.PollFirst()
	c.Check(ok, jc.IsTrue)
	c.Check(e, gc.Equals, 1)
	e, ok = m.PollLast()
	c.Check(ok, jc.IsTrue)
	c.Check(e, gc.Equals, 3)
	c.Check(m.Len(), gc.Equals, 1)
}

func (s *modelSuite) TestRemoveOccurrences(c *gc.C) {
	m := dequetest.NewModel[int](10)
	for _, v := range []int{1, 2, 1, 3, 1} {
		m.AddLast(v)
	}
	c.Check(m.RemoveFirstOccurrence(1), jc.IsTrue)
	c.Check(m.Slice(), jc.DeepEquals, []int{2, 1, 3, 1})
	c.Check(m.RemoveLastOccurrence(1), jc.IsTrue)
	c.Check(m.Slice(), jc.DeepEquals, []int{2, 1, 3})
	c.Check(m.RemoveLastOccurrence(7), jc.IsFalse)
	c.Check(m.RemoveAt(1), gc.Equals, 1)
	c.Check(m.Slice(), jc.DeepEquals, []int{2, 3})
}

func (s *modelSuite) TestCheckInvariantsMatchesModel(c *gc.C) {
	d, err := deque.New[int](deque.Config{CapacityBound: 20, SegmentCapacity: 3})
	c.Assert(err, jc.ErrorIsNil)
	m := dequetest.NewModel[int](20)
	for i := 0; i < 12; i++ {
		if i%2 == 0 {
			c.Assert(d.AddFirst(i), jc.ErrorIsNil)
			m.AddFirst(i)
		} else {
			c.Assert(d.AddLast(i), jc.ErrorIsNil)
			m.AddLast(i)
		}
		dequetest.CheckInvariants(c, d)
	}
	c.Check(d.Slice(), jc.DeepEquals, m.Slice())
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package validators supplies the authorization predicate deciding who may
// confirm bridge transfers. Membership management itself is host concern;
// the engine only consumes the predicate.
package validators

import (
	"github.com/luxfi/ids"
	"github.com/luxfi/math/set"
)

// Set answers whether an address belongs to the bridge validator set.
type Set interface {
	IsValidator(addr ids.ShortID) bool
}

var _ Set = (*StaticSet)(nil)

// StaticSet is a fixed membership list, typically loaded from configuration
// at startup.
type StaticSet struct {
	members set.Set[ids.ShortID]
}

func NewStaticSet(members ...ids.ShortID) *StaticSet {
	s := &StaticSet{
		members: set.NewSet[ids.ShortID](len(members)),
	}
	for _, member := range members {
		s.members.Add(member)
	}
	return s
}

func (s *StaticSet) IsValidator(addr ids.ShortID) bool {
	return s.members.Contains(addr)
}

// Len returns the number of members.
func (s *StaticSet) Len() int {
	return s.members.Len()
}

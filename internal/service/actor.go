package service

import "herbal/internal/entity/common"

// Actor is the caller of a service operation. The zero value is an
// anonymous visitor.
type Actor struct {
	ID   uint
	Role common.Role
}

// Anonymous reports whether nobody is logged in.
func (a Actor) Anonymous() bool {
	return a.ID == 0
}

// Can reports whether a logged in actor holds the capability.
func (a Actor) Can(capability common.Capability) bool {
	return !a.Anonymous() && a.Role.Can(capability)
}

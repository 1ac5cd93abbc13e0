package scheduler

import (
	"github.com/vk/tensorsched/internal/costmodel"
	"github.com/vk/tensorsched/internal/ir"
)

// resourceUser is one node currently occupying one unit of an execution
// resource, with the cycles left before it releases the unit.
type resourceUser struct {
	node      *ir.Node
	remaining int
}

// ledger tracks, per execution resource class, the nodes currently occupying
// its units. It is scratch state created fresh for every scheduling run.
type ledger struct {
	users map[*costmodel.Resource][]resourceUser
}

func newLedger() *ledger {
	return &ledger{users: make(map[*costmodel.Resource][]resourceUser)}
}

// available reports whether res has a free unit. The entry for a resource is
// created on first reference, so a class with zero units is simply always
// unavailable rather than a fault.
func (l *ledger) available(res *costmodel.Resource) bool {
	if _, ok := l.users[res]; !ok {
		l.users[res] = nil
	}
	return len(l.users[res]) < res.Units
}

// admit records n as occupying one unit of res for the given cycle count.
func (l *ledger) admit(res *costmodel.Resource, n *ir.Node, cycles int) {
	l.users[res] = append(l.users[res], resourceUser{node: n, remaining: cycles})
}

// active returns the total number of occupied units across all resources.
func (l *ledger) active() int {
	total := 0
	for _, users := range l.users {
		total += len(users)
	}
	return total
}

// advance moves simulated time forward to the next release event: it finds
// the minimum remaining cycle count across all users, subtracts it from
// everyone, and releases every user that reaches zero. The elapsed cycle
// count is returned. Calling advance with no active users violates the
// caller contract.
func (l *ledger) advance() int {
	if l.active() == 0 {
		panic("scheduler: ledger.advance called with no active resource users")
	}

	min := -1
	for _, users := range l.users {
		for _, u := range users {
			if min < 0 || u.remaining < min {
				min = u.remaining
			}
		}
	}

	for res, users := range l.users {
		var rm []int
		for i := range users {
			users[i].remaining -= min
			if users[i].remaining == 0 {
				rm = append(rm, i)
			}
		}
		// Release from the highest index down so pending removals keep
		// their positions.
		for i := len(rm) - 1; i >= 0; i-- {
			users = append(users[:rm[i]], users[rm[i]+1:]...)
		}
		l.users[res] = users
	}
	return min
}

package repository

import (
	"sync"

	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/internal/pkg/clock"
)

// Factory manages repository instances and ensures they are singletons per
// database handle.
type Factory struct {
	db    *gorm.DB
	clock clock.Clock
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory. A nil clock falls back to a
// fresh monotonic clock.
func NewFactory(db *gorm.DB, clk clock.Clock) *Factory {
	if clk == nil {
		clk = clock.NewMonotonic()
	}
	return &Factory{
		db:    db,
		clock: clk,
	}
}

// GetRepositories returns the shared set of repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db, f.clock)
	})
	return f.repos
}

// Package events publishes design.generated events so downstream
// consumers (cost estimation, usage analytics) can react to computed
// designs without this service persisting anything.
package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/pooldraft/pooldraft/internal/geometry"
)

type Event struct {
	Version     int                     `json:"version"`
	DesignID    string                  `json:"design_id"`
	GeneratedAt time.Time               `json:"generated_at"`
	Spec        geometry.PoolSpec       `json:"spec"`
	Report      geometry.QuantityReport `json:"report"`
	Advisories  []geometry.Advisory     `json:"advisories,omitempty"`
}

func (e Event) Validate() error {
	if e.Version != 1 {
		return fmt.Errorf("version must be 1")
	}
	if strings.TrimSpace(e.DesignID) == "" {
		return fmt.Errorf("design_id is required")
	}
	if e.GeneratedAt.IsZero() {
		return fmt.Errorf("generated_at is required")
	}
	if e.Spec.Length <= 0 || e.Spec.Width <= 0 {
		return fmt.Errorf("spec footprint must be positive")
	}
	return nil
}

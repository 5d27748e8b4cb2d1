// Package export serializes computed quantities for download.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/pooldraft/pooldraft/internal/geometry"
)

// QuantitiesCSV writes the spec and its derived quantities as
// parameter/value/units rows into an in-memory buffer. The spec must
// already be normalized so the exported kids_zone_length is the value
// the quantities were computed from. Row order is fixed; downstream
// spreadsheets key on it.
func QuantitiesCSV(spec geometry.PoolSpec, rep geometry.QuantityReport) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, 512))
	w := csv.NewWriter(buf)

	rows := [][3]string{
		{"parameter", "value", "units"},
		{"length", num(spec.Length), "m"},
		{"width", num(spec.Width), "m"},
		{"kids_depth", num(spec.DepthKids), "m"},
		{"adults_depth", num(spec.DepthAdults), "m"},
		{"kids_zone_length", num(spec.KidsZoneLength), "m"},
		{"water_volume_m3", num(rep.WaterVolumeM3), "m3"},
		{"excavation_volume_m3", num(rep.ExcavationVolumeM3), "m3"},
		{"concrete_volume_m3", num(rep.ConcreteTotalM3), "m3"},
	}
	for _, r := range rows {
		if err := w.Write(r[:]); err != nil {
			return nil, fmt.Errorf("write csv row %q: %w", r[0], err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func num(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

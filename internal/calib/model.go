// Package calib stores the calibrated screen regions used by run mode.
package calib

import (
	"errors"
	"fmt"

	"github.com/frudas24/deskrect/internal/geom"
)

var (
	// ErrNotCalibrated reports a missing or empty plugin region.
	ErrNotCalibrated = errors.New("plugin region not calibrated")
	// ErrRegionOutside reports a region that leaves its parent.
	ErrRegionOutside = errors.New("region outside its parent")
)

// Calib stores calibration data for the plugin panel and its sub-areas.
// Plugin is relative to the monitor origin; Chat and Scroll are relative to
// the plugin origin.
type Calib struct {
	MonitorIndex int            `json:"monitorIndex" yaml:"monitorIndex"`
	Plugin       geom.Rectangle `json:"plugin" yaml:"plugin"`
	Chat         geom.Rectangle `json:"chat" yaml:"chat"`
	Scroll       geom.Rectangle `json:"scroll" yaml:"scroll"`
}

// Regions holds calibrated areas in virtual-desktop coordinates.
type Regions struct {
	Plugin geom.Rectangle `json:"plugin"`
	Chat   geom.Rectangle `json:"chat"`
	Scroll geom.Rectangle `json:"scroll"`
}

// Status summarizes which regions are usable.
type Status struct {
	Plugin bool `json:"plugin"`
	Chat   bool `json:"chat"`
	Scroll bool `json:"scroll"`
}

// Normalize flips negative sizes, which come from dragging a selection up or
// to the left, into a rectangle with the same edges and non-negative size.
func Normalize(r geom.Rectangle) geom.Rectangle {
	if r.Width < 0 {
		x := geom.Narrow(r.Right())
		r.Width = geom.Narrow(geom.Widen(r.X) - geom.Widen(x))
		r.X = x
	}
	if r.Height < 0 {
		y := geom.Narrow(r.Bottom())
		r.Height = geom.Narrow(geom.Widen(r.Y) - geom.Widen(y))
		r.Y = y
	}
	return r
}

// Resolve maps the stored regions onto the virtual desktop. origin is the
// upper-left corner of the calibrated monitor. Chat and Scroll are clipped to
// the plugin area, so an uncalibrated or out-of-bounds sub-region comes back
// empty.
func Resolve(c Calib, origin geom.Point) Regions {
	plugin := Normalize(c.Plugin).TranslatedBy(origin)
	return Regions{
		Plugin: plugin,
		Chat:   within(plugin, c.Chat),
		Scroll: within(plugin, c.Scroll),
	}
}

// within resolves rel against plugin and clips it to the plugin area.
func within(plugin, rel geom.Rectangle) geom.Rectangle {
	return Normalize(rel).TranslatedBy(plugin.Location()).Intersection(plugin)
}

// StatusOf reports which regions of c have a non-empty area.
func StatusOf(c Calib) Status {
	return Status{
		Plugin: !Normalize(c.Plugin).IsEmpty(),
		Chat:   !Normalize(c.Chat).IsEmpty(),
		Scroll: !Normalize(c.Scroll).IsEmpty(),
	}
}

// Validate checks that the plugin region overlaps a monitor of the given
// size and that calibrated sub-regions lie inside the plugin region.
func Validate(c Calib, monitor geom.Size) error {
	plugin := Normalize(c.Plugin)
	if plugin.IsEmpty() {
		return ErrNotCalibrated
	}
	if !geom.FromSize(monitor).Intersects(plugin) {
		return fmt.Errorf("plugin %v: %w", plugin, ErrRegionOutside)
	}
	local := geom.FromSize(plugin.Size())
	if err := validateSub("chat", local, c.Chat); err != nil {
		return err
	}
	return validateSub("scroll", local, c.Scroll)
}

// validateSub accepts an uncalibrated region; a calibrated one must fit.
func validateSub(name string, local, rel geom.Rectangle) error {
	rel = Normalize(rel)
	if rel.IsEmpty() {
		return nil
	}
	if !local.ContainsRect(rel) {
		return fmt.Errorf("%s %v: %w", name, rel, ErrRegionOutside)
	}
	return nil
}

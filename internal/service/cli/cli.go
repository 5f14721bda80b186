package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/oshokin/tzalign"
	"github.com/oshokin/tzalign/internal/config"
	"github.com/oshokin/tzalign/internal/logger"
	"github.com/oshokin/tzalign/internal/timeparse"
)

// CommonOptions holds the flags shared by every subcommand.
type CommonOptions struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Timezone overrides the default timezone from the settings.
	Timezone string
	// PreferLater picks the later occurrence of an ambiguous wall clock.
	PreferLater bool
	// FailOnNonExistent rejects wall clocks inside a spring-forward gap.
	FailOnNonExistent bool
	// FailOnAmbiguous rejects wall clocks inside a fall-back overlap.
	FailOnAmbiguous bool
}

// policy converts the flag set into the library's policy.
func (o *CommonOptions) policy() tzalign.Policy {
	return tzalign.Policy{
		PreferLater:       o.PreferLater,
		FailOnNonExistent: o.FailOnNonExistent,
		FailOnAmbiguous:   o.FailOnAmbiguous,
	}
}

// zone resolves the effective timezone: the --timezone flag when present,
// otherwise the settings file's default.
func (o *CommonOptions) zone(ctx context.Context) (*tzalign.Zone, error) {
	name := o.Timezone

	if name == "" {
		cfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}

		name = cfg.DefaultTimezone

		logger.DebugKV(ctx, "using default timezone from settings", "timezone", name)
	}

	return tzalign.ResolveZone(name)
}

// AlignOptions controls the align subcommand.
type AlignOptions struct {
	CommonOptions

	// Time is the moment to align.
	Time string
	// Unit is the calendar unit: day, week or month.
	Unit string
	// Direction is down for the start of the unit, up for its last instant.
	Direction string
}

// Align parses the moment, snaps it to the requested calendar boundary and
// prints the result.
func Align(ctx context.Context, w io.Writer, opts *AlignOptions) error {
	zone, err := opts.zone(ctx)
	if err != nil {
		return err
	}

	moment, err := timeparse.Parse(opts.Time, zone, opts.policy())
	if err != nil {
		return err
	}

	direction, err := parseDirection(opts.Direction)
	if err != nil {
		return err
	}

	var aligned tzalign.Zoned

	switch opts.Unit {
	case "day", "":
		aligned, err = tzalign.AlignToDay(moment, zone, direction)
	case "week":
		aligned, err = tzalign.AlignToWeek(moment, zone, direction)
	case "month":
		aligned, err = tzalign.AlignToMonth(moment, zone, direction)
	default:
		err = fmt.Errorf("%w: unknown unit %q", tzalign.ErrInvalidArgument, opts.Unit)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, timeparse.Format(aligned))

	return err
}

// ConvertOptions controls the convert subcommand.
type ConvertOptions struct {
	CommonOptions

	// Time is the moment to convert.
	Time string
	// To names the target timezone.
	To string
}

// Convert parses the moment and prints it in the target timezone.
func Convert(ctx context.Context, w io.Writer, opts *ConvertOptions) error {
	zone, err := opts.zone(ctx)
	if err != nil {
		return err
	}

	target, err := tzalign.ResolveZone(opts.To)
	if err != nil {
		return err
	}

	moment, err := timeparse.Parse(opts.Time, zone, opts.policy())
	if err != nil {
		return err
	}

	converted, err := tzalign.Convert(moment, target)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, timeparse.Format(converted))

	return err
}

// StandardizeOptions controls the standardize subcommand.
type StandardizeOptions struct {
	CommonOptions

	// Time is the moment to normalize to UTC.
	Time string
}

// Standardize parses the moment and prints it normalized to UTC.
func Standardize(ctx context.Context, w io.Writer, opts *StandardizeOptions) error {
	zone, err := opts.zone(ctx)
	if err != nil {
		return err
	}

	moment, err := timeparse.Parse(opts.Time, zone, opts.policy())
	if err != nil {
		return err
	}

	standardized, err := tzalign.Standardize(moment, zone)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, timeparse.Format(standardized))

	return err
}

// RangeOptions controls the range subcommand.
type RangeOptions struct {
	CommonOptions

	// Start is the first element of the sequence.
	Start string
	// End bounds the sequence inclusively.
	End string
	// Step is the distance between consecutive elements.
	Step time.Duration
	// SkipMissing drops wall clocks that fall in a transition gap.
	SkipMissing bool
}

// Range prints the elements of the sequence, one per line.
func Range(ctx context.Context, w io.Writer, opts *RangeOptions) error {
	zone, err := opts.zone(ctx)
	if err != nil {
		return err
	}

	start, err := timeparse.Parse(opts.Start, zone, tzalign.Policy{})
	if err != nil {
		return err
	}

	end, err := timeparse.Parse(opts.End, zone, tzalign.Policy{})
	if err != nil {
		return err
	}

	seq, err := tzalign.Range(start, end, opts.Step, tzalign.RangeOptions{SkipMissing: opts.SkipMissing})
	if err != nil {
		return err
	}

	for moment := range seq {
		if _, err := fmt.Fprintln(w, timeparse.Format(moment)); err != nil {
			return err
		}
	}

	return nil
}

// WeeksOptions controls the weeks subcommand.
type WeeksOptions struct {
	CommonOptions

	// Start is the first instant of the span to partition.
	Start string
	// End is the last instant of the span to partition.
	End string
}

// Weeks prints the weekly partitions of the span, one "start end" pair per
// line.
func Weeks(ctx context.Context, w io.Writer, opts *WeeksOptions) error {
	zone, err := opts.zone(ctx)
	if err != nil {
		return err
	}

	start, err := timeparse.Parse(opts.Start, zone, tzalign.Policy{})
	if err != nil {
		return err
	}

	end, err := timeparse.Parse(opts.End, zone, tzalign.Policy{})
	if err != nil {
		return err
	}

	seq, err := tzalign.Weeks(start, end)
	if err != nil {
		return err
	}

	for partStart, partEnd := range seq {
		if _, err := fmt.Fprintf(w, "%s %s\n",
			timeparse.Format(partStart), timeparse.Format(partEnd)); err != nil {
			return err
		}
	}

	return nil
}

// NowOptions controls the now subcommand.
type NowOptions struct {
	CommonOptions
}

// Now prints the current moment in the effective timezone.
func Now(ctx context.Context, w io.Writer, opts *NowOptions) error {
	zone, err := opts.zone(ctx)
	if err != nil {
		return err
	}

	now, err := tzalign.Convert(tzalign.Now(), zone)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, timeparse.Format(now))

	return err
}

// parseDirection maps the flag value onto the library's direction. Empty
// means down.
func parseDirection(s string) (tzalign.Direction, error) {
	switch s {
	case "", "down":
		return tzalign.Down, nil
	case "up":
		return tzalign.Up, nil
	default:
		return tzalign.Down, fmt.Errorf("%w: unknown direction %q", tzalign.ErrInvalidArgument, s)
	}
}

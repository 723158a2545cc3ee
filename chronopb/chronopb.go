// Copyright 2020 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chronopb converts chrono values to and from the protocol
// buffer well-known types google.protobuf.Timestamp and
// google.protobuf.Duration.
//
// A chrono.DateTime has no zone, so Timestamp takes the UTC offset of the
// wall clock it holds; DateTime always returns UTC. Both well-known
// types have nanosecond resolution, of which a tick keeps a hundred.
package chronopb // import "github.com/ahnan4arch/chronoutil/chronopb"

import (
	"fmt"

	"github.com/ahnan4arch/chronoutil/chrono"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const nanosPerTick = 100

// Timestamp returns the instant dt-offset as a Timestamp.
func Timestamp(dt chrono.DateTime, offset chrono.TimeSpan) *timestamppb.Timestamp {
	ticks := int64(dt.Add(-offset)) - int64(chrono.UnixEpoch)
	secs, rem := ticks/chrono.TicksPerSecond, ticks%chrono.TicksPerSecond
	if rem < 0 {
		secs--
		rem += chrono.TicksPerSecond
	}
	return &timestamppb.Timestamp{Seconds: secs, Nanos: int32(rem * nanosPerTick)}
}

// DateTime returns the UTC wall clock of ts. Nanoseconds below tick
// resolution are truncated.
func DateTime(ts *timestamppb.Timestamp) (chrono.DateTime, error) {
	if err := ts.CheckValid(); err != nil {
		return 0, fmt.Errorf("chronopb: %w", err)
	}
	ticks := ts.GetSeconds()*chrono.TicksPerSecond + int64(ts.GetNanos()/nanosPerTick)
	return chrono.UnixEpoch.Add(chrono.TimeSpan(ticks)), nil
}

// Duration returns ts as a Duration.
func Duration(ts chrono.TimeSpan) *durationpb.Duration {
	ticks := ts.Ticks()
	return &durationpb.Duration{
		Seconds: ticks / chrono.TicksPerSecond,
		Nanos:   int32(ticks % chrono.TicksPerSecond * nanosPerTick),
	}
}

// TimeSpan returns d as a TimeSpan. Nanoseconds below tick resolution
// are truncated toward zero.
func TimeSpan(d *durationpb.Duration) (chrono.TimeSpan, error) {
	if err := d.CheckValid(); err != nil {
		return 0, fmt.Errorf("chronopb: %w", err)
	}
	return chrono.TimeSpan(d.GetSeconds()*chrono.TicksPerSecond + int64(d.GetNanos()/nanosPerTick)), nil
}

package main

import "testing"

func TestTelemetryCountersSnapshot(t *testing.T) {
	c := newTelemetryCounters()
	c.RecordEmission(12.875, 3)
	c.RecordEmission(50, 0)
	c.RecordDeliveries(2)
	c.RecordReaction()
	c.RecordReaction()

	snap := c.Snapshot()
	if snap.Emissions != 2 {
		t.Fatalf("emissions %d, want 2", snap.Emissions)
	}
	if snap.Candidates != 3 {
		t.Fatalf("candidates %d, want 3", snap.Candidates)
	}
	if snap.Deliveries != 2 {
		t.Fatalf("deliveries %d, want 2", snap.Deliveries)
	}
	if snap.Reactions != 2 {
		t.Fatalf("reactions %d, want 2", snap.Reactions)
	}
	if snap.LastRadius != 50 {
		t.Fatalf("last radius %g, want 50", snap.LastRadius)
	}
}

func TestTelemetryCountersNilSafe(t *testing.T) {
	var c *telemetryCounters
	c.RecordEmission(10, 1)
	c.RecordDeliveries(1)
	c.RecordReaction()
	if snap := c.Snapshot(); snap != (telemetrySnapshot{}) {
		t.Fatalf("nil counters produced snapshot %+v", snap)
	}
}

func TestTelemetryCountersIgnoreNegative(t *testing.T) {
	c := newTelemetryCounters()
	c.RecordEmission(5, -3)
	c.RecordDeliveries(-1)
	snap := c.Snapshot()
	if snap.Candidates != 0 || snap.Deliveries != 0 {
		t.Fatalf("negative inputs counted: %+v", snap)
	}
}

func TestEventHubNilSafe(t *testing.T) {
	var hub *eventHub
	// Gameplay code broadcasts unconditionally; a nil hub must drop.
	hub.Broadcast(emissionEvent{Type: "emission"})
}

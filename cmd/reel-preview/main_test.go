package main

import (
	"flag"
	"testing"
	"time"
)

func TestResolveSeed(t *testing.T) {
	clock := func() time.Time { return time.Unix(0, 42) }

	if got := resolveSeed(clock); got != 42 {
		t.Errorf("without -seed got %d, want the clock value 42", got)
	}

	if err := flag.CommandLine.Set("seed", "0"); err != nil {
		t.Fatalf("set seed: %v", err)
	}
	if got := resolveSeed(clock); got != 0 {
		t.Errorf("explicit -seed 0 got %d, want 0", got)
	}
}

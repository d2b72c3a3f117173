package checkers

import "context"

// Probe is anything that can report whether it is usable.
type Probe interface {
	Writable(ctx context.Context) error
}

// ArtifactChecker fails when the SVG download directory cannot be written.
type ArtifactChecker struct {
	probe Probe
}

func NewArtifactChecker(p Probe) *ArtifactChecker { return &ArtifactChecker{probe: p} }

func (c *ArtifactChecker) Name() string { return "artifacts" }

func (c *ArtifactChecker) Check(ctx context.Context) error { return c.probe.Writable(ctx) }

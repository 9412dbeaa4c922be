package parameter

import "time"

// Hand landmark indices (21-point hand model)
const (
	LandmarkThumbIP  = 3
	LandmarkThumbTip = 4
	LandmarkIndexTip = 8

	// LandmarkCount is the number of keypoints a complete hand carries
	LandmarkCount = 21
)

// Openness Mapping
const (
	// OpennessClosedDistance is the pinch distance mapped to openness 0
	OpennessClosedDistance = 0.05

	// OpennessGain maps distance above closed to openness, 0.3 reaches 1
	OpennessGain = 4.0

	// OpennessNeutral is published when no hand is visible
	OpennessNeutral = 0.5
)

// Special Gesture Hysteresis
const (
	// PinchEnterDistance activates the special gesture below this distance
	PinchEnterDistance = 0.04

	// PinchExitDistance deactivates it above this distance
	PinchExitDistance = 0.1
)

// Landmark Feed
const (
	// FeedReplayInterval paces replayed frames that carry no explicit delay (~30 FPS detector)
	FeedReplayInterval = 33 * time.Millisecond

	// FeedMaxLineBytes bounds a single JSON frame line
	FeedMaxLineBytes = 1 << 20

	// FeedDialTimeout bounds the websocket handshake
	FeedDialTimeout = 5 * time.Second

	// PointerNudgeStep is the synthetic pinch distance change per key press
	PointerNudgeStep = 0.02

	// PointerDefaultDistance is the synthetic pinch distance before any nudge
	PointerDefaultDistance = 0.175
)

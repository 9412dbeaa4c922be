package parameter

import "time"

// Camera
const (
	// CameraDistance is the camera z position looking at the origin
	CameraDistance = 6.0

	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 60.0

	// CameraNear culls particles closer than this to the camera plane
	CameraNear = 0.1

	// CameraOrbitPeriod is the time for one full automatic orbit around the Y axis
	CameraOrbitPeriod = 120 * time.Second

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0
)

package libcam

// these functions are only exported when running tests

var MapToSurface = (*Arcball).mapToSurface
var RotationBetween = (*Arcball).rotationBetween

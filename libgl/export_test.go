package libgl

// only for tests

var ToRGBA = toRGBA
var FlipVertical = flipVertical
var ScaleToPow2 = scaleToPow2

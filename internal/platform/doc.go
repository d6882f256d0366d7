package platform

// Package platform contains OS and screen integration: the application
// relative icon directory and the pixel ratio and size category of a canvas.

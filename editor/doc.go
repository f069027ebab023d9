// Package editor holds the state of the interactive corner editor as a plain
// struct with explicit event handlers. Rendering is left to the caller:
// Overlay describes what to draw, Press/Drag/Release/Resize mutate the state.
//
// Coordinates passed to the handlers are display coordinates, i.e. the image
// scaled by Ratio to fit the canvas. SourceCorners converts back to image
// pixels for the warp pipeline.
package editor
